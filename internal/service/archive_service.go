package service

import (
	"VibeCheck/internal/api/dto"
	"VibeCheck/internal/model"
	"VibeCheck/internal/pkg/util"
	"VibeCheck/internal/repository"
	"context"
	"fmt"
	"time"
)

const maxHistoryDays = 90

// ArchiveService 查询已公布的历史结果
type ArchiveService interface {
	History(ctx context.Context, days int) ([]*dto.DailyMoodDTO, error)
	Day(ctx context.Context, day string) (*dto.DailyMoodDTO, error)
	Enabled() bool
}

type archiveServiceImpl struct {
	dailyMoodRepo repository.DailyMoodRepo
}

// NewArchiveService repo 为 nil 表示未启用 MySQL 归档
func NewArchiveService(dailyMoodRepo repository.DailyMoodRepo) ArchiveService {
	return &archiveServiceImpl{dailyMoodRepo: dailyMoodRepo}
}

func (s *archiveServiceImpl) Enabled() bool {
	return s.dailyMoodRepo != nil
}

// History 最近 days 天，按日期倒序
func (s *archiveServiceImpl) History(ctx context.Context, days int) ([]*dto.DailyMoodDTO, error) {
	if !s.Enabled() {
		return nil, ErrArchiveDisabled
	}
	if days <= 0 || days > maxHistoryDays {
		return nil, ErrParamInvalid
	}

	moods, err := s.dailyMoodRepo.GetRecent(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	res := make([]*dto.DailyMoodDTO, 0, len(moods))
	for _, m := range moods {
		res = append(res, toDailyMoodDTO(m))
	}
	return res, nil
}

// Day 指定日期的归档，未归档时返回 ErrArchiveNotFound
func (s *archiveServiceImpl) Day(ctx context.Context, day string) (*dto.DailyMoodDTO, error) {
	if !s.Enabled() {
		return nil, ErrArchiveDisabled
	}
	if _, err := util.ParseDay(day); err != nil {
		return nil, err
	}

	mood, err := s.dailyMoodRepo.GetByDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("archive of %s: %w", day, err)
	}
	if mood == nil {
		return nil, ErrArchiveNotFound
	}
	return toDailyMoodDTO(mood), nil
}

func toDailyMoodDTO(m *model.DailyMood) *dto.DailyMoodDTO {
	return &dto.DailyMoodDTO{
		Day:          m.Day,
		WinningIndex: m.WinningIndex,
		WinningMood:  m.WinningMood,
		WinningCount: m.WinningCount,
		TotalVotes:   m.TotalVotes,
		Tally:        []int64(m.Tally),
		AnnouncedAt:  m.AnnouncedAt.UTC().Format(time.RFC3339),
	}
}
