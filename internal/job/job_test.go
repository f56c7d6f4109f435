package job

import (
	"VibeCheck/internal/model"
	"VibeCheck/internal/pkg/util"
	"VibeCheck/internal/repository"
	"VibeCheck/internal/service"
	"context"
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 10, 17, 0, 0, 1, 0, time.UTC)

type fakeLocker struct {
	held     map[string]bool
	keys     []string
	released int
	err      error
}

func (l *fakeLocker) Acquire(_ context.Context, key string) (func(), bool, error) {
	l.keys = append(l.keys, key)
	if l.err != nil {
		return nil, false, l.err
	}
	if l.held == nil {
		l.held = make(map[string]bool)
	}
	if l.held[key] {
		return nil, false, nil
	}
	l.held[key] = true
	return func() {
		l.released++
		delete(l.held, key)
	}, true, nil
}

type fakeNotifier struct {
	got []*model.AnnounceResult
	err error
}

func (n *fakeNotifier) Name() string { return "fake" }

func (n *fakeNotifier) Notify(_ context.Context, r *model.AnnounceResult) error {
	n.got = append(n.got, r)
	return n.err
}

func setup(t *testing.T) (repository.VoteRepo, service.CycleService) {
	t.Helper()
	repo := repository.NewMemoryVoteRepo()
	catalog := model.NewCatalog(model.DefaultMoods)
	return repo, service.NewCycleService(repo, catalog, util.FixedClock(testNow), time.UTC)
}

func TestResetJob_ResetsPreviousDay(t *testing.T) {
	ctx := context.Background()
	repo, cycle := setup(t)
	_, _ = repo.UpsertVote(ctx, "1", "2026-10-16", 0)
	_, _ = repo.UpsertVote(ctx, "2", "2026-10-16", 1)
	_, _ = repo.UpsertVote(ctx, "1", "2026-10-17", 2)

	locker := &fakeLocker{}
	deleted, err := NewResetJob(cycle, locker, 1).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}
	if len(locker.keys) != 1 || locker.keys[0] != "lock:cycle:reset:2026-10-16" || locker.released != 0 {
		t.Errorf("locker = %+v", locker)
	}

	today, _ := repo.ListVotes(ctx, "2026-10-17")
	if len(today) != 1 {
		t.Errorf("today's votes touched: %+v", today)
	}
}

func TestResetJob_ZeroLagResetsToday(t *testing.T) {
	ctx := context.Background()
	repo, cycle := setup(t)
	_, _ = repo.UpsertVote(ctx, "1", "2026-10-17", 2)

	deleted, err := NewResetJob(cycle, nil, 0).Execute(ctx)
	if err != nil || deleted != 1 {
		t.Errorf("deleted = %d, err = %v", deleted, err)
	}
}

func TestResetJob_LockHeldElsewhere(t *testing.T) {
	ctx := context.Background()
	repo, cycle := setup(t)
	_, _ = repo.UpsertVote(ctx, "1", "2026-10-16", 0)

	locker := &fakeLocker{held: map[string]bool{"lock:cycle:reset:2026-10-16": true}}
	deleted, err := NewResetJob(cycle, locker, 1).Execute(ctx)
	if err != nil || deleted != 0 {
		t.Errorf("deleted = %d, err = %v", deleted, err)
	}
	votes, _ := repo.ListVotes(ctx, "2026-10-16")
	if len(votes) != 1 {
		t.Error("reset ran without lock")
	}
}

func TestResetJob_LockError(t *testing.T) {
	_, cycle := setup(t)
	lockErr := errors.New("redis down")
	_, err := NewResetJob(cycle, &fakeLocker{err: lockErr}, 1).Execute(context.Background())
	if !errors.Is(err, lockErr) {
		t.Errorf("err = %v", err)
	}
}

func TestAnnounceJob(t *testing.T) {
	ctx := context.Background()
	repo, cycle := setup(t)
	_, _ = repo.UpsertVote(ctx, "1", "2026-10-17", 4)
	_, _ = repo.UpsertVote(ctx, "2", "2026-10-17", 4)
	_, _ = repo.UpsertVote(ctx, "3", "2026-10-17", 0)

	notifier := &fakeNotifier{err: errors.New("kafka down")}
	locker := &fakeLocker{}
	result, err := NewAnnounceJob(cycle, notifier, locker).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.WinningIndex != 4 || result.WinningCount != 2 || result.TotalVotes != 3 {
		t.Errorf("result = %+v", result)
	}
	if len(notifier.got) != 1 || notifier.got[0] != result {
		t.Errorf("notifier got %+v", notifier.got)
	}
	if locker.keys[0] != "lock:cycle:announce:2026-10-17" {
		t.Errorf("lock key = %s", locker.keys[0])
	}
}

func TestAnnounceJob_LockHeldElsewhere(t *testing.T) {
	_, cycle := setup(t)
	notifier := &fakeNotifier{}
	locker := &fakeLocker{held: map[string]bool{"lock:cycle:announce:2026-10-17": true}}

	result, err := NewAnnounceJob(cycle, notifier, locker).Execute(context.Background())
	if err != nil || result != nil {
		t.Errorf("result = %+v, err = %v", result, err)
	}
	if len(notifier.got) != 0 {
		t.Error("notified without lock")
	}
}

func TestAnnounceJob_SecondRunSameDaySkipped(t *testing.T) {
	ctx := context.Background()
	repo, cycle := setup(t)
	_, _ = repo.UpsertVote(ctx, "1", "2026-10-17", 2)

	notifier := &fakeNotifier{}
	locker := &fakeLocker{}
	first := NewAnnounceJob(cycle, notifier, locker)
	second := NewAnnounceJob(cycle, notifier, locker)

	if result, err := first.Execute(ctx); err != nil || result == nil {
		t.Fatalf("first run: %+v %v", result, err)
	}
	if result, err := second.Execute(ctx); err != nil || result != nil {
		t.Errorf("second run: %+v %v", result, err)
	}
	if len(notifier.got) != 1 {
		t.Errorf("notified %d times", len(notifier.got))
	}
	if locker.released != 0 || !locker.held["lock:cycle:announce:2026-10-17"] {
		t.Errorf("lock released after success: %+v", locker)
	}
}

func TestResetJob_FailureReleasesLock(t *testing.T) {
	_, cycle := setup(t)
	locker := &fakeLocker{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewResetJob(cycle, locker, 1).Execute(ctx); err == nil {
		t.Fatal("expected error on canceled context")
	}
	if locker.released != 1 || locker.held["lock:cycle:reset:2026-10-16"] {
		t.Errorf("lock kept after failure: %+v", locker)
	}
}
