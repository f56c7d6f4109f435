package cron

import log "log/slog"

// InitCron 注册并启动；未启用内置调度时只依赖外部 HTTP 触发
func InitCron(mgr *Manager, enabled bool) error {
	if !enabled {
		log.Info("Cron disabled, waiting for external triggers on /api/cron/*")
		return nil
	}
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	return nil
}
