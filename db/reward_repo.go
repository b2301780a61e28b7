package db

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/greencycle/recyclemart/models"
)

type RewardRepository interface {
	SaveReward(reward *models.Reward) error
	GetRewardByUserID(userID uint) (*models.Reward, error)
	GetUserRewardBalance(userID uint) (int, error)
	DeductBalance(userID uint, amount int) error
	SaveActivity(activity *models.RecyclingActivity) error
	GetActivitiesByUserID(userID uint) ([]models.RecyclingActivity, error)
	SaveRedemption(redemption *models.Redemption) error
}

type rewardRepo struct {
	DB *gorm.DB
}

func NewRewardRepo(db *GormDB) RewardRepository {
	return &rewardRepo{db.DB}
}

// SaveReward adds the reward's points onto the user's running balance,
// creating the balance row on first award.
func (r *rewardRepo) SaveReward(reward *models.Reward) error {
	var existing models.Reward
	err := r.DB.Where("user_id = ?", reward.UserID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			reward.Balance = reward.Point
			return r.DB.Create(reward).Error
		}
		return errors.Wrap(err, "failed to load reward")
	}

	existing.Point += reward.Point
	existing.Balance += reward.Point
	return r.DB.Save(&existing).Error
}

func (r *rewardRepo) GetRewardByUserID(userID uint) (*models.Reward, error) {
	var reward models.Reward
	if err := r.DB.Where("user_id = ?", userID).First(&reward).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

func (r *rewardRepo) GetUserRewardBalance(userID uint) (int, error) {
	var reward models.Reward
	err := r.DB.Where("user_id = ?", userID).First(&reward).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "failed to load reward balance")
	}
	return reward.Balance, nil
}

// DeductBalance removes redeemed points from the balance without touching
// the lifetime point count.
func (r *rewardRepo) DeductBalance(userID uint, amount int) error {
	var reward models.Reward
	if err := r.DB.Where("user_id = ?", userID).First(&reward).Error; err != nil {
		return errors.Wrap(err, "failed to load reward")
	}
	if reward.Balance < amount {
		return errors.New("insufficient balance")
	}
	reward.Balance -= amount
	return r.DB.Save(&reward).Error
}

func (r *rewardRepo) SaveActivity(activity *models.RecyclingActivity) error {
	if err := r.DB.Create(activity).Error; err != nil {
		return errors.Wrap(err, "failed to save activity")
	}
	return nil
}

func (r *rewardRepo) GetActivitiesByUserID(userID uint) ([]models.RecyclingActivity, error) {
	var activities []models.RecyclingActivity
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&activities).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}
	return activities, nil
}

func (r *rewardRepo) SaveRedemption(redemption *models.Redemption) error {
	if err := r.DB.Create(redemption).Error; err != nil {
		return errors.Wrap(err, "failed to save redemption")
	}
	return nil
}
