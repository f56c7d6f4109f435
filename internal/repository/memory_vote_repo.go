package repository

import (
	"VibeCheck/internal/model"
	"cmp"
	"context"
	"slices"
	"sync"
	"time"
)

type voteKey struct {
	userID string
	day    string
}

type memoryVoteRepoImpl struct {
	mu    sync.Mutex
	seq   uint64
	votes map[voteKey]*memoryVote
	now   func() time.Time
}

type memoryVote struct {
	vote model.Vote
	seq  uint64
}

// NewMemoryVoteRepo 进程内存储，用于本地运行与测试
func NewMemoryVoteRepo() VoteRepo {
	return &memoryVoteRepoImpl{
		votes: make(map[voteKey]*memoryVote),
		now:   time.Now,
	}
}

// UpsertVote 首次写入分配序号，覆盖时保留原序号
func (s *memoryVoteRepoImpl) UpsertVote(ctx context.Context, userID, day string, optionIndex int) (*model.WriteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := voteKey{userID: userID, day: day}
	if v, ok := s.votes[key]; ok {
		v.vote.OptionIndex = optionIndex
		v.vote.UpdatedAt = s.now()
		return &model.WriteResult{Matched: 1}, nil
	}

	s.seq++
	s.votes[key] = &memoryVote{
		vote: model.Vote{
			UserID:      userID,
			Day:         day,
			OptionIndex: optionIndex,
			UpdatedAt:   s.now(),
		},
		seq: s.seq,
	}
	return &model.WriteResult{Inserted: true}, nil
}

// ListVotes 返回副本，按首次写入顺序排列
func (s *memoryVoteRepoImpl) ListVotes(ctx context.Context, day string) ([]*model.Vote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]*memoryVote, 0)
	for k, v := range s.votes {
		if k.day == day {
			matched = append(matched, v)
		}
	}
	slices.SortFunc(matched, func(a, b *memoryVote) int {
		return cmp.Compare(a.seq, b.seq)
	})

	res := make([]*model.Vote, 0, len(matched))
	for _, v := range matched {
		vote := v.vote
		res = append(res, &vote)
	}
	return res, nil
}

func (s *memoryVoteRepoImpl) DeleteVotes(ctx context.Context, day string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for k := range s.votes {
		if k.day == day {
			delete(s.votes, k)
			n++
		}
	}
	return n, nil
}

func (s *memoryVoteRepoImpl) Ping(ctx context.Context) error {
	return ctx.Err()
}
