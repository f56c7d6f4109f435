package job

import (
	"VibeCheck/internal/pkg/consts"
	"VibeCheck/internal/pkg/logger"
	"VibeCheck/internal/pkg/util"
	"VibeCheck/internal/service"
	"context"
	"fmt"
	log "log/slog"
	"time"
)

const jobTimeout = time.Minute

// ResetJob 清空已结束那天的投票，lagDays 为 0 时清空当天
type ResetJob struct {
	cycleSvc service.CycleService
	locker   Locker
	lagDays  int
}

func NewResetJob(cycleSvc service.CycleService, locker Locker, lagDays int) *ResetJob {
	if locker == nil {
		locker = NopLocker{}
	}
	return &ResetJob{cycleSvc: cycleSvc, locker: locker, lagDays: lagDays}
}

func (s *ResetJob) Run() {
	ctx, cancel := context.WithTimeout(logger.NewJobContext("reset"), jobTimeout)
	defer cancel()

	if _, err := s.Execute(ctx); err != nil {
		log.ErrorContext(ctx, "reset job failed", "err", err)
	}
}

// Execute 返回删除条数，未拿到锁时返回 0
func (s *ResetJob) Execute(ctx context.Context) (int64, error) {
	day, err := util.ShiftDay(s.cycleSvc.Today(), -s.lagDays)
	if err != nil {
		return 0, err
	}

	release, ok, err := s.locker.Acquire(ctx, consts.CycleResetLock+day)
	if err != nil {
		return 0, fmt.Errorf("acquire reset lock: %w", err)
	}
	if !ok {
		log.InfoContext(ctx, "reset already running elsewhere, skip", "day", day)
		return 0, nil
	}

	deleted, err := s.cycleSvc.ResetDay(ctx, day)
	if err != nil {
		// 失败时放锁，允许其他副本重试
		release()
		return 0, err
	}
	log.InfoContext(ctx, "daily votes reset", "day", day, "deleted", deleted)
	return deleted, nil
}
