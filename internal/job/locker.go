package job

import "context"

// Locker 多副本部署时保证同一天的任务只执行一次
// 成功执行后不释放锁，由过期时间回收；release 只在任务失败时调用
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), ok bool, err error)
}

// NopLocker 单实例部署，不加锁
type NopLocker struct{}

func (NopLocker) Acquire(context.Context, string) (func(), bool, error) {
	return func() {}, true, nil
}
