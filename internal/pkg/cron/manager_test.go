package cron

import (
	"strings"
	"testing"

	"github.com/robfig/cron/v3"
)

func TestRegisterJobs(t *testing.T) {
	noop := cron.FuncJob(func() {})
	mgr := NewCronManager(
		Entry{Name: "reset", Spec: "0 0 0 * * *", Job: noop},
		Entry{Name: "announce", Spec: "0 0 20 * * *", Job: noop},
	)
	if err := mgr.RegisterJobs(); err != nil {
		t.Fatalf("RegisterJobs: %v", err)
	}
	if n := len(mgr.engine.Entries()); n != 2 {
		t.Errorf("entries = %d, want 2", n)
	}
}

func TestRegisterJobs_InvalidSpec(t *testing.T) {
	// 缺少秒字段
	mgr := NewCronManager(Entry{Name: "reset", Spec: "0 0 * * *", Job: cron.FuncJob(func() {})})
	err := mgr.RegisterJobs()
	if err == nil || !strings.Contains(err.Error(), "reset") {
		t.Errorf("err = %v", err)
	}
}
