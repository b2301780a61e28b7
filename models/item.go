package models

import "time"

// Upload is a recyclable item listed on the marketplace.
type Upload struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	UserID       uint      `gorm:"index" json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateUploadRequest is the multipart form payload for listing an item.
// The image arrives as a separate form file.
type CreateUploadRequest struct {
	Title       string `form:"title" binding:"required,min=2"`
	Description string `form:"description"`
}
