package models

// Reward tracks a user's accumulated recycling points.
type Reward struct {
	Model
	UserID  uint `gorm:"index" json:"user_id"`
	Point   int  `json:"point"`
	Balance int  `json:"balance"`
}

// RecyclingActivity is one point-earning action (an upload or a listing).
type RecyclingActivity struct {
	Model
	UserID       uint   `gorm:"index" json:"user_id"`
	ActivityType string `json:"type"`
	ItemName     string `json:"item"`
	Points       int    `json:"points"`
}

// Activity types recognized by the reward service.
const (
	ActivityUpload = "upload"
	ActivityList   = "list"
)

// RewardItem is a redeemable catalog entry.
type RewardItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	IconType    string `json:"icon_type"`
	Available   bool   `json:"available"`
}

// Redemption records a catalog reward claimed by a user.
type Redemption struct {
	Model
	UserID   uint   `gorm:"index" json:"user_id"`
	RewardID string `json:"reward_id"`
	Cost     int    `json:"cost"`
}

// UserStats is the rewards dashboard summary.
type UserStats struct {
	TotalPoints       int `json:"total_points"`
	Level             int `json:"level"`
	PointsToNextLevel int `json:"points_to_next_level"`
	StreakDays        int `json:"streak_days"`
}
