package services

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencycle/recyclemart/config"
	"github.com/greencycle/recyclemart/models"
)

// fakeRewardRepo is an in-memory stand-in for the gorm-backed repository.
type fakeRewardRepo struct {
	balance     map[uint]int
	activities  map[uint][]models.RecyclingActivity
	redemptions []models.Redemption
	failLoad    bool
}

func newFakeRewardRepo() *fakeRewardRepo {
	return &fakeRewardRepo{
		balance:    make(map[uint]int),
		activities: make(map[uint][]models.RecyclingActivity),
	}
}

func (f *fakeRewardRepo) SaveReward(reward *models.Reward) error {
	f.balance[reward.UserID] += reward.Point
	return nil
}

func (f *fakeRewardRepo) GetRewardByUserID(userID uint) (*models.Reward, error) {
	balance, ok := f.balance[userID]
	if !ok {
		return nil, errors.New("not found")
	}
	return &models.Reward{UserID: userID, Point: balance, Balance: balance}, nil
}

func (f *fakeRewardRepo) GetUserRewardBalance(userID uint) (int, error) {
	if f.failLoad {
		return 0, errors.New("db down")
	}
	return f.balance[userID], nil
}

func (f *fakeRewardRepo) DeductBalance(userID uint, amount int) error {
	if f.balance[userID] < amount {
		return errors.New("insufficient balance")
	}
	f.balance[userID] -= amount
	return nil
}

func (f *fakeRewardRepo) SaveActivity(activity *models.RecyclingActivity) error {
	f.activities[activity.UserID] = append(f.activities[activity.UserID], *activity)
	return nil
}

func (f *fakeRewardRepo) GetActivitiesByUserID(userID uint) ([]models.RecyclingActivity, error) {
	return f.activities[userID], nil
}

func (f *fakeRewardRepo) SaveRedemption(redemption *models.Redemption) error {
	f.redemptions = append(f.redemptions, *redemption)
	return nil
}

func TestPointsForActivity(t *testing.T) {
	points, err := PointsForActivity(models.ActivityUpload)
	require.NoError(t, err)
	assert.Equal(t, 15, points)

	points, err = PointsForActivity(models.ActivityList)
	require.NoError(t, err)
	assert.Equal(t, 5, points)

	_, err = PointsForActivity("teleport")
	assert.Error(t, err)
}

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		total      int
		wantLevel  int
		wantToNext int
	}{
		{0, 1, 100},
		{50, 1, 50},
		{100, 2, 100},
		{235, 3, 65},
		{-5, 1, 100},
	}

	for _, tc := range tests {
		level, toNext := LevelForPoints(tc.total)
		assert.Equal(t, tc.wantLevel, level, "level for %d points", tc.total)
		assert.Equal(t, tc.wantToNext, toNext, "points to next level for %d points", tc.total)
	}
}

func TestStreakDays(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	tests := []struct {
		name  string
		times []time.Time
		want  int
	}{
		{"no activity", nil, 0},
		{"today only", []time.Time{day(0)}, 1},
		{"three consecutive days", []time.Time{day(0), day(-1), day(-2)}, 3},
		{"streak survives nothing-yet-today", []time.Time{day(-1), day(-2)}, 2},
		{"gap breaks streak", []time.Time{day(0), day(-2), day(-3)}, 1},
		{"multiple activities one day", []time.Time{day(0), day(0).Add(time.Hour)}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StreakDays(tc.times, now))
		})
	}
}

func TestRecordActivityAccumulatesBalance(t *testing.T) {
	repo := newFakeRewardRepo()
	service := NewRewardService(repo, &config.Config{})

	activity, err := service.RecordActivity(1, models.ActivityUpload, "Plastic Bottle")
	require.NoError(t, err)
	assert.Equal(t, 15, activity.Points)

	_, err = service.RecordActivity(1, models.ActivityList, "Plastic Bottle")
	require.NoError(t, err)

	assert.Equal(t, 20, repo.balance[1])
	assert.Len(t, repo.activities[1], 2)
}

func TestRecordActivityUnknownType(t *testing.T) {
	service := NewRewardService(newFakeRewardRepo(), &config.Config{})

	_, err := service.RecordActivity(1, "bogus", "thing")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	repo := newFakeRewardRepo()
	repo.balance[1] = 235
	service := NewRewardService(repo, &config.Config{})

	stats, err := service.Stats(1)
	require.NoError(t, err)
	assert.Equal(t, 235, stats.TotalPoints)
	assert.Equal(t, 3, stats.Level)
	assert.Equal(t, 65, stats.PointsToNextLevel)
}

func TestCatalogIsACopy(t *testing.T) {
	service := NewRewardService(newFakeRewardRepo(), &config.Config{})

	catalog := service.Catalog()
	require.NotEmpty(t, catalog)
	catalog[0].Name = "mutated"

	assert.NotEqual(t, "mutated", service.Catalog()[0].Name)
}

func TestRedeem(t *testing.T) {
	repo := newFakeRewardRepo()
	repo.balance[1] = 250
	service := NewRewardService(repo, &config.Config{})

	redemption, apiErr := service.Redeem(1, "1")
	require.Nil(t, apiErr)
	assert.Equal(t, 200, redemption.Cost)
	assert.Equal(t, 50, repo.balance[1])
	require.Len(t, repo.redemptions, 1)
	assert.Equal(t, "1", repo.redemptions[0].RewardID)
}

func TestRedeemUnknownReward(t *testing.T) {
	service := NewRewardService(newFakeRewardRepo(), &config.Config{})

	_, apiErr := service.Redeem(1, "999")
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestRedeemInsufficientBalance(t *testing.T) {
	repo := newFakeRewardRepo()
	repo.balance[1] = 199
	service := NewRewardService(repo, &config.Config{})

	_, apiErr := service.Redeem(1, "1")
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, 199, repo.balance[1], "failed redemption deducts nothing")
	assert.Empty(t, repo.redemptions)
}
