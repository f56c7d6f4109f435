package consts

const (
	CycleResetLock    = "lock:cycle:reset:"
	CycleAnnounceLock = "lock:cycle:announce:"
)
