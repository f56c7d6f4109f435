package job

import (
	"VibeCheck/internal/model"
	"VibeCheck/internal/pkg/consts"
	"VibeCheck/internal/pkg/logger"
	"VibeCheck/internal/pkg/notify"
	"VibeCheck/internal/service"
	"context"
	"fmt"
	log "log/slog"
)

// AnnounceJob 统计当天结果并通知下游
type AnnounceJob struct {
	cycleSvc service.CycleService
	notifier notify.Notifier
	locker   Locker
}

func NewAnnounceJob(cycleSvc service.CycleService, notifier notify.Notifier, locker Locker) *AnnounceJob {
	if locker == nil {
		locker = NopLocker{}
	}
	return &AnnounceJob{cycleSvc: cycleSvc, notifier: notifier, locker: locker}
}

func (s *AnnounceJob) Run() {
	ctx, cancel := context.WithTimeout(logger.NewJobContext("announce"), jobTimeout)
	defer cancel()

	if _, err := s.Execute(ctx); err != nil {
		log.ErrorContext(ctx, "announce job failed", "err", err)
	}
}

// Execute 未拿到锁时返回 nil 结果；通知失败只记录日志，锁保留到过期，同一天不会重复通知
func (s *AnnounceJob) Execute(ctx context.Context) (*model.AnnounceResult, error) {
	day := s.cycleSvc.Today()

	release, ok, err := s.locker.Acquire(ctx, consts.CycleAnnounceLock+day)
	if err != nil {
		return nil, fmt.Errorf("acquire announce lock: %w", err)
	}
	if !ok {
		log.InfoContext(ctx, "announce already running elsewhere, skip", "day", day)
		return nil, nil
	}

	result, err := s.cycleSvc.AnnounceDay(ctx, day)
	if err != nil {
		release()
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, result); err != nil {
			log.WarnContext(ctx, "announce notification incomplete", "day", day, "err", err)
		}
	}
	return result, nil
}
