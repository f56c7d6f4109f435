package repository

import (
	"VibeCheck/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyMoodRepo interface {
	SaveOrUpdate(ctx context.Context, mood *model.DailyMood) error
	GetByDay(ctx context.Context, day string) (*model.DailyMood, error)
	GetRecent(ctx context.Context, limit int) ([]*model.DailyMood, error)
}

type dailyMoodRepoImpl struct {
	db *gorm.DB
}

func NewDailyMoodRepo(db *gorm.DB) DailyMoodRepo {
	return &dailyMoodRepoImpl{db: db}
}

// SaveOrUpdate 同一天重复公布时覆盖结果
func (r *dailyMoodRepoImpl) SaveOrUpdate(ctx context.Context, mood *model.DailyMood) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"winning_index",
			"winning_mood",
			"winning_count",
			"total_votes",
			"tally",
			"announced_at",
		}),
	}).Create(mood).Error
}

// GetByDay 未归档时返回 nil, nil
func (r *dailyMoodRepoImpl) GetByDay(ctx context.Context, day string) (*model.DailyMood, error) {
	var mood model.DailyMood
	err := r.db.WithContext(ctx).Where("day = ?", day).First(&mood).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mood, nil
}

// GetRecent 按日期倒序返回最近 limit 条
func (r *dailyMoodRepoImpl) GetRecent(ctx context.Context, limit int) ([]*model.DailyMood, error) {
	if limit <= 0 {
		limit = 7
	}
	moods := make([]*model.DailyMood, 0)
	result := r.db.WithContext(ctx).
		Order("day DESC").
		Limit(limit).
		Find(&moods)
	if result.Error != nil {
		return nil, result.Error
	}
	return moods, nil
}
