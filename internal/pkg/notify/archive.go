package notify

import (
	"VibeCheck/internal/model"
	"VibeCheck/internal/repository"
	"context"
	"time"
)

// ArchiveNotifier 将每日结果写入 MySQL，便于查看历史
type ArchiveNotifier struct {
	repo repository.DailyMoodRepo
	now  func() time.Time
}

func NewArchiveNotifier(repo repository.DailyMoodRepo) *ArchiveNotifier {
	return &ArchiveNotifier{repo: repo, now: time.Now}
}

func (a *ArchiveNotifier) Name() string {
	return "archive"
}

func (a *ArchiveNotifier) Notify(ctx context.Context, result *model.AnnounceResult) error {
	return a.repo.SaveOrUpdate(ctx, ToDailyMood(result, a.now()))
}

// ToDailyMood 公布结果转归档记录
func ToDailyMood(result *model.AnnounceResult, at time.Time) *model.DailyMood {
	mood := &model.DailyMood{
		Day:          result.Day,
		WinningIndex: result.WinningIndex,
		WinningCount: result.WinningCount,
		TotalVotes:   result.TotalVotes,
		Tally:        model.TallyColumn(result.Tally),
		AnnouncedAt:  at,
	}
	if result.HasWinner() {
		mood.WinningMood = result.WinningOption.Label()
	}
	return mood
}
