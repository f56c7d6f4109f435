package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Locker 基于 SETNX 的分布式锁，多副本部署时保证定时任务只执行一次
type Locker struct {
	ttl time.Duration
}

func NewLocker(ttl time.Duration) *Locker {
	return &Locker{ttl: ttl}
}

// Acquire 不重试，拿不到锁直接返回 false；锁在 ttl 后自动过期，release 只删除自己持有的锁
func (l *Locker) Acquire(ctx context.Context, key string) (func(), bool, error) {
	token := uuid.NewString()
	ok, err := TryLock(ctx, key, token, l.ttl, 1)
	if err != nil || !ok {
		return nil, ok, err
	}
	release := func() {
		_ = UnLock(context.Background(), key, token)
	}
	return release, true, nil
}
