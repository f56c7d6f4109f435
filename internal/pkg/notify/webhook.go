package notify

import (
	"VibeCheck/internal/api/config"
	"VibeCheck/internal/model"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// WebhookPayload 推送到外部服务的消息体
type WebhookPayload struct {
	Text         string  `json:"text"`
	Day          string  `json:"day"`
	WinningIndex int     `json:"winning_index"`
	WinningMood  string  `json:"winning_mood,omitempty"`
	WinningEmoji string  `json:"winning_emoji,omitempty"`
	VoteCount    int64   `json:"vote_count"`
	TotalVotes   int64   `json:"total_votes"`
	Tally        []int64 `json:"tally"`
}

// WebhookNotifier 以 JSON POST 推送每日结果
type WebhookNotifier struct {
	client *resty.Client
	url    string
}

func NewWebhookNotifier(cfg config.WebhookConfig) *WebhookNotifier {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "VibeCheck/1.0").
		SetJSONMarshaler(json.Marshal)
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}

	return &WebhookNotifier{client: client, url: cfg.URL}
}

func (w *WebhookNotifier) Name() string {
	return "webhook"
}

func (w *WebhookNotifier) Notify(ctx context.Context, result *model.AnnounceResult) error {
	payload := WebhookPayload{
		Text:         Message(result),
		Day:          result.Day,
		WinningIndex: result.WinningIndex,
		VoteCount:    result.WinningCount,
		TotalVotes:   result.TotalVotes,
		Tally:        result.Tally,
	}
	if result.HasWinner() {
		payload.WinningMood = result.WinningOption.Name
		payload.WinningEmoji = result.WinningOption.Emoji
	}

	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("post webhook: unexpected status %d", resp.StatusCode())
	}
	return nil
}
