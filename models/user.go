package models

import (
	"net/http"

	goval "github.com/go-passwd/validator"
	"github.com/google/uuid"
	"github.com/leebenson/conform"
	"golang.org/x/crypto/bcrypt"

	apiError "github.com/greencycle/recyclemart/errors"
)

// User represents a user of the application
type User struct {
	Model
	Fullname       string    `json:"fullname" binding:"required,min=2" conform:"trim"`
	Username       string    `json:"username" gorm:"unique;not null" binding:"required,min=2" conform:"trim"`
	Email          string    `json:"email" gorm:"unique;not null" binding:"required,email" conform:"trim,lower"`
	Password       string    `json:"password,omitempty" gorm:"-"`
	HashedPassword string    `json:"-"`
	IsSocial       bool      `json:"-"`
	AccessToken    string    `json:"-" gorm:"-"`
	ThumbNailURL   string    `json:"thumbnail_url,omitempty"`
	RoleID         uuid.UUID `gorm:"type:uuid" json:"role_id"`
	Role           Role      `gorm:"foreignKey:RoleID" json:"role"`
}

// Sanitize normalizes user-supplied fields before validation.
func (u *User) Sanitize() {
	conform.Strings(u)
}

// ValidatePassword enforces the signup password policy.
func (u *User) ValidatePassword() *apiError.Error {
	passwordValidator := goval.New(
		goval.MinLength(6, apiError.New("password must be at least 6 characters", http.StatusBadRequest)),
		goval.MaxLength(64, apiError.New("password must be at most 64 characters", http.StatusBadRequest)),
	)
	if err := passwordValidator.Validate(u.Password); err != nil {
		if apiErr, ok := err.(*apiError.Error); ok {
			return apiErr
		}
		return apiError.New(err.Error(), http.StatusBadRequest)
	}
	return nil
}

// VerifyPassword compares the supplied password with the stored hash.
func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
}

// LoginRequest is the email/password login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID           uint   `json:"id"`
	Fullname     string `json:"fullname"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ThumbNailURL string `json:"thumbnail_url,omitempty"`
}

// LoginResponse bundles the user with an access token.
type LoginResponse struct {
	UserResponse
	AccessToken string `json:"access_token"`
}

// ChatTokenResponse is returned by the chat token endpoint.
type ChatTokenResponse struct {
	Token string `json:"token"`
}

// Blacklist holds revoked access tokens.
type Blacklist struct {
	Model
	Token string `gorm:"index" json:"token"`
}

func (u *User) LoginResponse(accessToken string) *LoginResponse {
	return &LoginResponse{
		UserResponse: UserResponse{
			ID:           u.ID,
			Fullname:     u.Fullname,
			Username:     u.Username,
			Email:        u.Email,
			ThumbNailURL: u.ThumbNailURL,
		},
		AccessToken: accessToken,
	}
}
