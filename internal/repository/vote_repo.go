package repository

import (
	"VibeCheck/internal/model"
	"context"
	"errors"
)

// ErrStoreUnavailable 存储层不可用，所有后端错误都包装成该错误
var ErrStoreUnavailable = errors.New("投票存储不可用")

// VoteRepo 每个用户每天一票的存储契约
type VoteRepo interface {
	// UpsertVote 按 (userID, day) 插入或覆盖
	UpsertVote(ctx context.Context, userID, day string, optionIndex int) (*model.WriteResult, error)
	// ListVotes 按写入顺序返回当天所有投票
	ListVotes(ctx context.Context, day string) ([]*model.Vote, error)
	// DeleteVotes 删除当天所有投票，返回删除条数
	DeleteVotes(ctx context.Context, day string) (int64, error)
	// Ping 检查后端连通性
	Ping(ctx context.Context) error
}
