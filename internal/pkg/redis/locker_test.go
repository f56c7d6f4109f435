package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

func newTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	Rdb = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	t.Cleanup(func() {
		_ = Rdb.Close()
		Rdb = nil
	})
	return mr
}

func TestLocker_HeldUntilTTL(t *testing.T) {
	mr := newTestRedis(t)
	ctx := context.Background()
	key := "lock:cycle:announce:2026-10-17"
	locker := NewLocker(5 * time.Minute)

	_, ok, err := locker.Acquire(ctx, key)
	if err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}
	if ttl := mr.TTL(key); ttl != 5*time.Minute {
		t.Errorf("ttl = %v", ttl)
	}

	// 另一个副本稍后触发
	if _, ok, err = locker.Acquire(ctx, key); err != nil || ok {
		t.Errorf("second acquire: ok=%v err=%v", ok, err)
	}

	mr.FastForward(5 * time.Minute)
	if _, ok, err = locker.Acquire(ctx, key); err != nil || !ok {
		t.Errorf("acquire after expiry: ok=%v err=%v", ok, err)
	}
}

func TestLocker_ReleaseOnlyOwnLock(t *testing.T) {
	mr := newTestRedis(t)
	ctx := context.Background()
	key := "lock:cycle:reset:2026-10-16"
	locker := NewLocker(time.Minute)

	release, ok, err := locker.Acquire(ctx, key)
	if err != nil || !ok {
		t.Fatalf("acquire: ok=%v err=%v", ok, err)
	}
	release()
	if mr.Exists(key) {
		t.Fatal("release kept the key")
	}

	release, ok, _ = locker.Acquire(ctx, key)
	if !ok {
		t.Fatal("reacquire failed")
	}
	mr.Set(key, "someone-else")
	release()
	if got, _ := mr.Get(key); got != "someone-else" {
		t.Errorf("foreign lock removed, value = %q", got)
	}
}

func TestLocker_RedisDown(t *testing.T) {
	mr := newTestRedis(t)
	mr.Close()

	if _, ok, err := NewLocker(time.Minute).Acquire(context.Background(), "lock:x"); err == nil || ok {
		t.Errorf("ok=%v err=%v", ok, err)
	}
}
