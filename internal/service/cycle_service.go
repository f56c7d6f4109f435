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

// CycleService 每日周期：重置与公布，均幂等，由外部调度触发
type CycleService interface {
	ResetDay(ctx context.Context, day string) (int64, error)
	AnnounceDay(ctx context.Context, day string) (*model.AnnounceResult, error)
	Summary(ctx context.Context, day string, recent int) (*dto.DaySummaryDTO, error)
	Today() string
	Catalog() *model.Catalog
}

type cycleServiceImpl struct {
	voteRepo repository.VoteRepo
	catalog  *model.Catalog
	clock    util.Clock
	loc      *time.Location
}

func NewCycleService(voteRepo repository.VoteRepo, catalog *model.Catalog, clock util.Clock, loc *time.Location) CycleService {
	if clock == nil {
		clock = util.SystemClock
	}
	if loc == nil {
		loc = time.UTC
	}
	return &cycleServiceImpl{
		voteRepo: voteRepo,
		catalog:  catalog,
		clock:    clock,
		loc:      loc,
	}
}

// ResetDay 清空某天的投票
func (s *cycleServiceImpl) ResetDay(ctx context.Context, day string) (int64, error) {
	if _, err := util.ParseDay(day); err != nil {
		return 0, err
	}
	n, err := s.voteRepo.DeleteVotes(ctx, day)
	if err != nil {
		return 0, fmt.Errorf("reset day %s: %w", day, err)
	}
	return n, nil
}

// AnnounceDay 统计某天结果，不修改任何状态
func (s *cycleServiceImpl) AnnounceDay(ctx context.Context, day string) (*model.AnnounceResult, error) {
	if _, err := util.ParseDay(day); err != nil {
		return nil, err
	}
	votes, err := s.voteRepo.ListVotes(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("announce day %s: %w", day, err)
	}
	return s.buildResult(day, votes), nil
}

// Summary 管理后台使用，recent 为展示的投票条数
func (s *cycleServiceImpl) Summary(ctx context.Context, day string, recent int) (*dto.DaySummaryDTO, error) {
	if _, err := util.ParseDay(day); err != nil {
		return nil, err
	}
	votes, err := s.voteRepo.ListVotes(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("summary %s: %w", day, err)
	}

	result := s.buildResult(day, votes)
	if recent >= 0 && len(votes) > recent {
		votes = votes[:recent]
	}

	return &dto.DaySummaryDTO{
		Day:         day,
		Results:     MoodCounts(result, s.catalog),
		TotalVotes:  result.TotalVotes,
		WinningMood: MoodOf(result.WinningOption),
		RecentVotes: toVoteDTOs(votes, s.catalog),
	}, nil
}

func (s *cycleServiceImpl) Today() string {
	return util.DayOf(s.clock.Now(), s.loc)
}

func (s *cycleServiceImpl) Catalog() *model.Catalog {
	return s.catalog
}

func (s *cycleServiceImpl) buildResult(day string, votes []*model.Vote) *model.AnnounceResult {
	tally := Tally(votes, s.catalog.Len())
	result := &model.AnnounceResult{
		Day:          day,
		Tally:        tally,
		WinningIndex: model.NoWinner,
		TotalVotes:   tally.Total(),
	}
	if idx, ok := Winner(tally); ok {
		mood, _ := s.catalog.At(idx)
		result.WinningIndex = idx
		result.WinningOption = &mood
		result.WinningCount = tally[idx]
	}
	return result
}

// MoodCounts 将统计结果展开为带百分比的列表
func MoodCounts(result *model.AnnounceResult, catalog *model.Catalog) []*dto.MoodCount {
	res := make([]*dto.MoodCount, 0, len(result.Tally))
	for i, n := range result.Tally {
		mood, _ := catalog.At(i)
		percent := 0
		if result.TotalVotes > 0 {
			percent = int((n*100 + result.TotalVotes/2) / result.TotalVotes)
		}
		res = append(res, &dto.MoodCount{
			Index:    i,
			Mood:     mood.Name,
			Emoji:    mood.Emoji,
			Count:    n,
			Percent:  percent,
			IsWinner: i == result.WinningIndex,
		})
	}
	return res
}

func MoodOf(m *model.Mood) *dto.MoodDTO {
	if m == nil {
		return nil
	}
	return &dto.MoodDTO{Mood: m.Name, Emoji: m.Emoji, Link: m.Link}
}
