package notify

import (
	"VibeCheck/internal/api/config"
	"VibeCheck/internal/model"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func winnerResult() *model.AnnounceResult {
	mood := model.DefaultMoods[0]
	return &model.AnnounceResult{
		Day:           "2026-10-17",
		Tally:         model.Tally{3, 1, 0, 0, 0},
		WinningIndex:  0,
		WinningOption: &mood,
		WinningCount:  3,
		TotalVotes:    4,
	}
}

func emptyResult() *model.AnnounceResult {
	return &model.AnnounceResult{
		Day:          "2026-10-17",
		Tally:        model.Tally{0, 0, 0, 0, 0},
		WinningIndex: model.NoWinner,
	}
}

type fakeNotifier struct {
	name  string
	err   error
	calls atomic.Int32
}

func (f *fakeNotifier) Name() string { return f.name }

func (f *fakeNotifier) Notify(context.Context, *model.AnnounceResult) error {
	f.calls.Add(1)
	return f.err
}

func TestMessage(t *testing.T) {
	if got := Message(winnerResult()); got != "Today's mood is: 😊 Happy with 3 votes." {
		t.Errorf("Message = %q", got)
	}
	if got := Message(emptyResult()); got != "No votes recorded today." {
		t.Errorf("Message = %q", got)
	}
}

func TestMulti_NotifiesAllAndJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	ok := &fakeNotifier{name: "ok"}
	bad := &fakeNotifier{name: "bad", err: boom}

	err := Multi{ok, bad, LogNotifier{}}.Notify(context.Background(), winnerResult())
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if !strings.Contains(err.Error(), "bad:") {
		t.Errorf("err not labeled: %v", err)
	}
	if ok.calls.Load() != 1 || bad.calls.Load() != 1 {
		t.Error("not every notifier was called")
	}

	if err = (Multi{ok}).Notify(context.Background(), emptyResult()); err != nil {
		t.Errorf("unexpected err %v", err)
	}
}

func TestWebhookNotifier(t *testing.T) {
	var got WebhookPayload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(config.WebhookConfig{URL: srv.URL, Token: "t0k", Timeout: 2})
	if err := n.Notify(context.Background(), winnerResult()); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if auth != "Bearer t0k" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.Text != "Today's mood is: 😊 Happy with 3 votes." || got.WinningEmoji != "😊" || got.TotalVotes != 4 {
		t.Errorf("payload = %+v", got)
	}
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(config.WebhookConfig{URL: srv.URL})
	if err := n.Notify(context.Background(), emptyResult()); err == nil {
		t.Error("expected error on 502")
	}
}

type fakeArchiveRepo struct {
	saved *model.DailyMood
}

func (f *fakeArchiveRepo) SaveOrUpdate(_ context.Context, m *model.DailyMood) error {
	f.saved = m
	return nil
}

func (f *fakeArchiveRepo) GetByDay(context.Context, string) (*model.DailyMood, error) {
	return f.saved, nil
}

func (f *fakeArchiveRepo) GetRecent(context.Context, int) ([]*model.DailyMood, error) {
	return []*model.DailyMood{f.saved}, nil
}

func TestArchiveNotifier(t *testing.T) {
	repo := &fakeArchiveRepo{}
	at := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)
	n := NewArchiveNotifier(repo)
	n.now = func() time.Time { return at }

	if err := n.Notify(context.Background(), winnerResult()); err != nil {
		t.Fatal(err)
	}
	if repo.saved.WinningMood != "😊 Happy" || repo.saved.TotalVotes != 4 || !repo.saved.AnnouncedAt.Equal(at) {
		t.Errorf("saved = %+v", repo.saved)
	}

	_ = n.Notify(context.Background(), emptyResult())
	if repo.saved.WinningIndex != model.NoWinner || repo.saved.WinningMood != "" {
		t.Errorf("saved empty = %+v", repo.saved)
	}
}
