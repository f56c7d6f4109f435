package main

import (
	"VibeCheck/internal/api/config"
	"VibeCheck/internal/job"
	"VibeCheck/internal/pkg/cron"
	"VibeCheck/internal/pkg/database"
	"VibeCheck/internal/pkg/kafka"
	"VibeCheck/internal/pkg/logger"
	"VibeCheck/internal/pkg/mongo"
	"VibeCheck/internal/pkg/redis"
	"VibeCheck/internal/repository"
	"VibeCheck/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}

	// 初始化日志
	logger.InitLogger(cfg.Logstash)

	infra := &wire.Infra{}

	// 投票存储
	switch cfg.Store.Driver {
	case "memory":
		log.Warn("Using in-memory vote store, votes are lost on restart")
		infra.VoteRepo = repository.NewMemoryVoteRepo()
	default:
		mongoConn, err := mongo.InitMongo(cfg.Mongo)
		if err != nil {
			log.Error("Fatal error: failed to create mongo connection", "err", err)
			panic(err)
		}
		defer mongo.Close(mongoConn)
		infra.VoteRepo = mongo.NewVoteRepo(mongoConn)
	}

	// Redis 连接，用于多副本任务锁
	if cfg.Redis.Enable {
		if err = redis.InitRedis(cfg.Redis); err != nil {
			log.Error("Fatal error: failed to create redis connection", "err", err)
			panic(err)
		}
		defer func() { _ = redis.Close() }()
		infra.Locker = redis.NewLocker(time.Duration(cfg.Cycle.LockTTL) * time.Second)
	} else {
		infra.Locker = job.NopLocker{}
	}

	// 归档数据库连接
	if cfg.DB.Enable {
		dbCfg := cfg.DB
		db, err := database.NewGormDB(&dbCfg)
		if err != nil {
			log.Error("Fatal error: failed to create database connection", "err", err)
			panic(err)
		}
		defer database.Close(db)
		infra.DB = db
	}

	// Kafka 生产者
	if cfg.Kafka.Enable {
		producer, err := kafka.NewAnnounceProducer(cfg.Kafka)
		if err != nil {
			log.Error("Fatal error: failed to create kafka producer", "err", err)
			panic(err)
		}
		defer func() { _ = producer.Close() }()
		infra.Producer = producer
	}

	// 依赖注入
	app, err := wire.BuildApplication(infra, cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	err = cron.InitCron(app.CronMgr, cfg.Cycle.CronEnable)
	if err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	if cfg.Cycle.CronEnable {
		g.Go(func() error {
			<-ctx.Done()
			log.Info("Cron Jobs stopping...")
			app.CronMgr.Stop()
			return nil
		})
	}

	// HTTP 服务器
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: app.Router,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}
