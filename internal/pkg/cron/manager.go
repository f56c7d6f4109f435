package cron

import (
	"fmt"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

// Entry 一条定时任务
type Entry struct {
	Name string
	Spec string
	Job  cron.Job
}

type Manager struct {
	engine  *cron.Cron
	entries []Entry
}

// NewCronManager spec 带秒字段，例如 "0 0 20 * * *"
func NewCronManager(entries ...Entry) *Manager {
	return &Manager{
		engine:  cron.New(cron.WithSeconds()),
		entries: entries,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	for _, e := range s.entries {
		if _, err := s.engine.AddJob(e.Spec, e.Job); err != nil {
			return fmt.Errorf("register %s job (%s): %w", e.Name, e.Spec, err)
		}
		log.Info("Cron job registered", "job", e.Name, "spec", e.Spec)
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
