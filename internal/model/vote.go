package model

import (
	"time"
)

// Vote 用户在某一天的心情投票，(user_id, day) 唯一
type Vote struct {
	UserID      string    `bson:"user_id" json:"user_id"`
	Day         string    `bson:"day" json:"day"`                  // YYYY-MM-DD
	OptionIndex int       `bson:"option_index" json:"option_index"` // 心情目录下标
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// WriteResult Upsert 结果
type WriteResult struct {
	Inserted bool  // 新建记录
	Matched  int64 // 命中的已有记录数
}
