package wire

import (
	"VibeCheck/internal/api"
	"VibeCheck/internal/api/config"
	"VibeCheck/internal/api/handler"
	"VibeCheck/internal/job"
	"VibeCheck/internal/pkg/cron"
	"VibeCheck/internal/pkg/kafka"
	"VibeCheck/internal/pkg/notify"
	"VibeCheck/internal/pkg/util"
	"VibeCheck/internal/repository"
	"VibeCheck/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Infra 已建立的外部连接，可选组件为 nil 表示未启用
type Infra struct {
	VoteRepo repository.VoteRepo
	DB       *gorm.DB
	Producer *kafka.AnnounceProducer
	Locker   job.Locker
}

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router   *gin.Engine
	CronMgr  *cron.Manager
	Notifier notify.Notifier
}

func BuildApplication(infra *Infra, cfg *config.Config) (*ApplicationContainer, error) {
	if infra == nil || infra.VoteRepo == nil {
		return nil, errors.New("vote store is required")
	}

	catalog := cfg.Catalog()
	loc := cfg.Location()

	var dailyMoodRepo repository.DailyMoodRepo
	if infra.DB != nil {
		dailyMoodRepo = repository.NewDailyMoodRepo(infra.DB)
	}

	voteService := service.NewVoteService(infra.VoteRepo, catalog, util.SystemClock, loc)
	cycleService := service.NewCycleService(infra.VoteRepo, catalog, util.SystemClock, loc)
	archiveService := service.NewArchiveService(dailyMoodRepo)

	notifier := buildNotifier(infra, dailyMoodRepo, cfg)

	handlers := &api.HandlersGroup{
		FrameHandler:  handler.NewFrameHandler(voteService, catalog),
		ImageHandler:  handler.NewImageHandler(cycleService),
		CronHandler:   handler.NewCronHandler(cycleService, notifier),
		AdminHandler:  handler.NewAdminHandler(cycleService, voteService, archiveService),
		HealthHandler: handler.NewHealthHandler(voteService),
	}

	router := api.SetupRouter(handlers, cfg)

	cronMgr := cron.NewCronManager(
		cron.Entry{Name: "reset", Spec: cfg.Cycle.ResetSpec, Job: job.NewResetJob(cycleService, infra.Locker, cfg.Cycle.ResetLagDays)},
		cron.Entry{Name: "announce", Spec: cfg.Cycle.AnnounceSpec, Job: job.NewAnnounceJob(cycleService, notifier, infra.Locker)},
	)

	return &ApplicationContainer{
		Router:   router,
		CronMgr:  cronMgr,
		Notifier: notifier,
	}, nil
}

// buildNotifier 日志始终启用，其余按配置叠加
func buildNotifier(infra *Infra, dailyMoodRepo repository.DailyMoodRepo, cfg *config.Config) notify.Multi {
	notifiers := notify.Multi{notify.LogNotifier{}}
	if cfg.Webhook.Enable && cfg.Webhook.URL != "" {
		notifiers = append(notifiers, notify.NewWebhookNotifier(cfg.Webhook))
	}
	if infra.Producer != nil {
		notifiers = append(notifiers, infra.Producer)
	}
	if dailyMoodRepo != nil {
		notifiers = append(notifiers, notify.NewArchiveNotifier(dailyMoodRepo))
	}
	return notifiers
}
