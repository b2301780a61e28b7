package services

import (
	"fmt"
	"net/http"
	"time"

	"github.com/greencycle/recyclemart/config"
	"github.com/greencycle/recyclemart/db"
	apiError "github.com/greencycle/recyclemart/errors"
	"github.com/greencycle/recyclemart/models"
)

// Points awarded per recycling activity.
const (
	PointsPerUpload = 15
	PointsPerList   = 5

	pointsPerLevel = 100
)

// rewardCatalog is the fixed set of redeemable rewards.
var rewardCatalog = []models.RewardItem{
	{ID: "1", Name: "10% Off Local Coffee Shop", Description: "Get 10% off your next purchase", Cost: 200, IconType: "discount", Available: true},
	{ID: "2", Name: "Plant a Tree (Donation)", Description: "We donate to plant a tree", Cost: 300, IconType: "leaf", Available: true},
	{ID: "3", Name: "$5 Public Transit Credit", Description: "Credit for local transit", Cost: 500, IconType: "transit", Available: true},
}

type RewardService interface {
	RecordActivity(userID uint, activityType, itemName string) (*models.RecyclingActivity, error)
	Stats(userID uint) (*models.UserStats, error)
	Activities(userID uint) ([]models.RecyclingActivity, error)
	Catalog() []models.RewardItem
	Redeem(userID uint, rewardID string) (*models.Redemption, *apiError.Error)
}

type rewardService struct {
	Config     *config.Config
	rewardRepo db.RewardRepository
}

func NewRewardService(rewardRepo db.RewardRepository, conf *config.Config) RewardService {
	return &rewardService{
		Config:     conf,
		rewardRepo: rewardRepo,
	}
}

// PointsForActivity returns the points an activity type earns.
func PointsForActivity(activityType string) (int, error) {
	switch activityType {
	case models.ActivityUpload:
		return PointsPerUpload, nil
	case models.ActivityList:
		return PointsPerList, nil
	default:
		return 0, fmt.Errorf("unknown activity type: %q", activityType)
	}
}

// LevelForPoints converts a points balance into a level and the points
// still needed for the next one. Every level takes 100 points; excess
// carries over.
func LevelForPoints(total int) (level, pointsToNextLevel int) {
	if total < 0 {
		total = 0
	}
	return total/pointsPerLevel + 1, pointsPerLevel - total%pointsPerLevel
}

// StreakDays counts consecutive calendar days with at least one activity,
// walking backwards from today (or yesterday, if today has none yet).
func StreakDays(activityTimes []time.Time, now time.Time) int {
	days := make(map[string]bool, len(activityTimes))
	for _, t := range activityTimes {
		days[t.Format("2006-01-02")] = true
	}

	day := now
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func (s *rewardService) RecordActivity(userID uint, activityType, itemName string) (*models.RecyclingActivity, error) {
	points, err := PointsForActivity(activityType)
	if err != nil {
		return nil, err
	}

	activity := &models.RecyclingActivity{
		UserID:       userID,
		ActivityType: activityType,
		ItemName:     itemName,
		Points:       points,
	}
	if err := s.rewardRepo.SaveActivity(activity); err != nil {
		return nil, err
	}

	reward := &models.Reward{UserID: userID, Point: points}
	if err := s.rewardRepo.SaveReward(reward); err != nil {
		return nil, fmt.Errorf("error saving reward: %v", err)
	}

	return activity, nil
}

func (s *rewardService) Stats(userID uint) (*models.UserStats, error) {
	balance, err := s.rewardRepo.GetUserRewardBalance(userID)
	if err != nil {
		return nil, fmt.Errorf("error getting reward balance: %w", err)
	}

	activities, err := s.rewardRepo.GetActivitiesByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("error getting activities: %w", err)
	}
	times := make([]time.Time, 0, len(activities))
	for _, a := range activities {
		times = append(times, a.CreatedAt)
	}

	level, toNext := LevelForPoints(balance)
	return &models.UserStats{
		TotalPoints:       balance,
		Level:             level,
		PointsToNextLevel: toNext,
		StreakDays:        StreakDays(times, time.Now()),
	}, nil
}

func (s *rewardService) Activities(userID uint) ([]models.RecyclingActivity, error) {
	return s.rewardRepo.GetActivitiesByUserID(userID)
}

func (s *rewardService) Catalog() []models.RewardItem {
	catalog := make([]models.RewardItem, len(rewardCatalog))
	copy(catalog, rewardCatalog)
	return catalog
}

func (s *rewardService) Redeem(userID uint, rewardID string) (*models.Redemption, *apiError.Error) {
	var item *models.RewardItem
	for i := range rewardCatalog {
		if rewardCatalog[i].ID == rewardID {
			item = &rewardCatalog[i]
			break
		}
	}
	if item == nil || !item.Available {
		return nil, apiError.New("reward not found", http.StatusNotFound)
	}

	balance, err := s.rewardRepo.GetUserRewardBalance(userID)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}
	if balance < item.Cost {
		return nil, apiError.New("insufficient points balance", http.StatusBadRequest)
	}

	if err := s.rewardRepo.DeductBalance(userID, item.Cost); err != nil {
		return nil, apiError.ErrInternalServerError
	}

	redemption := &models.Redemption{
		UserID:   userID,
		RewardID: item.ID,
		Cost:     item.Cost,
	}
	if err := s.rewardRepo.SaveRedemption(redemption); err != nil {
		return nil, apiError.ErrInternalServerError
	}
	return redemption, nil
}
