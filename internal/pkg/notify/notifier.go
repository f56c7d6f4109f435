package notify

import (
	"VibeCheck/internal/model"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Notifier 公布结果的下游，只负责发送，不参与统计
type Notifier interface {
	Name() string
	Notify(ctx context.Context, result *model.AnnounceResult) error
}

// Multi 并发通知所有下游，单个失败不影响其余
type Multi []Notifier

func (m Multi) Name() string {
	return "multi"
}

func (m Multi) Notify(ctx context.Context, result *model.AnnounceResult) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	for _, n := range m {
		g.Go(func() error {
			if err := n.Notify(ctx, result); err != nil {
				log.ErrorContext(ctx, "notify failed", "notifier", n.Name(), "day", result.Day, "err", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", n.Name(), err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// Message 推送文案
func Message(result *model.AnnounceResult) string {
	if !result.HasWinner() {
		return "No votes recorded today."
	}
	return fmt.Sprintf("Today's mood is: %s with %d votes.", result.WinningOption.Label(), result.WinningCount)
}

// LogNotifier 只写日志，始终启用
type LogNotifier struct{}

func (LogNotifier) Name() string {
	return "log"
}

func (LogNotifier) Notify(ctx context.Context, result *model.AnnounceResult) error {
	log.InfoContext(ctx, "daily mood announced",
		"day", result.Day,
		"message", Message(result),
		"tally", []int64(result.Tally),
		"total_votes", result.TotalVotes,
	)
	return nil
}
