package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// DailyMood 每日公布结果归档
type DailyMood struct {
	ID           uint64      `gorm:"primaryKey"`
	Day          string      `gorm:"type:char(10);not null;uniqueIndex:idx_day" json:"day"`
	WinningIndex int         `gorm:"not null;default:-1" json:"winning_index"`
	WinningMood  string      `gorm:"type:varchar(64);not null;default:''" json:"winning_mood"`
	WinningCount int64       `gorm:"not null;default:0" json:"winning_count"`
	TotalVotes   int64       `gorm:"not null;default:0" json:"total_votes"`
	Tally        TallyColumn `gorm:"type:json;not null" json:"tally"`
	AnnouncedAt  time.Time   `gorm:"not null" json:"announced_at"`
}

func (DailyMood) TableName() string {
	return "daily_moods"
}

// TallyColumn 以 JSON 数组存储的票数快照
type TallyColumn []int64

func (t TallyColumn) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *TallyColumn) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}
	return json.Unmarshal(bytes, t)
}
