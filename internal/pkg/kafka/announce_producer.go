package kafka

import (
	"VibeCheck/internal/api/config"
	"VibeCheck/internal/model"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// AnnounceEvent 每日结果消息，key 为日期
type AnnounceEvent struct {
	Day          string  `json:"day"`
	WinningIndex int     `json:"winning_index"`
	WinningMood  string  `json:"winning_mood,omitempty"`
	WinningEmoji string  `json:"winning_emoji,omitempty"`
	VoteCount    int64   `json:"vote_count"`
	TotalVotes   int64   `json:"total_votes"`
	Tally        []int64 `json:"tally"`
	AnnouncedAt  int64   `json:"announced_at"`
}

// AnnounceProducer 将公布结果写入 Kafka
type AnnounceProducer struct {
	producer sarama.SyncProducer
	topic    string
	now      func() time.Time
}

// NewAnnounceProducer 连接 broker 并创建同步生产者
func NewAnnounceProducer(cfg config.KafkaConfig) (*AnnounceProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	log.Info("Kafka announce producer ready", "topic", cfg.AnnounceTopic)
	return newAnnounceProducer(producer, cfg.AnnounceTopic), nil
}

func newAnnounceProducer(producer sarama.SyncProducer, topic string) *AnnounceProducer {
	return &AnnounceProducer{producer: producer, topic: topic, now: time.Now}
}

func (p *AnnounceProducer) Name() string {
	return "kafka"
}

func (p *AnnounceProducer) Notify(ctx context.Context, result *model.AnnounceResult) error {
	event := AnnounceEvent{
		Day:          result.Day,
		WinningIndex: result.WinningIndex,
		VoteCount:    result.WinningCount,
		TotalVotes:   result.TotalVotes,
		Tally:        result.Tally,
		AnnouncedAt:  p.now().Unix(),
	}
	if result.HasWinner() {
		event.WinningMood = result.WinningOption.Name
		event.WinningEmoji = result.WinningOption.Emoji
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal announce event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(result.Day),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send announce event: %w", err)
	}

	log.InfoContext(ctx, "announce event published",
		"topic", p.topic, "partition", partition, "offset", offset, "day", result.Day)
	return nil
}

func (p *AnnounceProducer) Close() error {
	return p.producer.Close()
}
