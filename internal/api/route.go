package api

import (
	"VibeCheck/internal/api/config"
	"VibeCheck/internal/api/handler"
	"VibeCheck/internal/api/middleware"
	"VibeCheck/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})
	r.SetHTMLTemplate(handler.AdminTemplate())

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.CommonMiddleware(cfg.Server.BaseURL))
	logger.SetupGin(r)

	// 卡片
	r.GET("/", group.FrameHandler.Home)
	r.GET("/login", group.FrameHandler.Login)
	r.POST("/action", group.FrameHandler.Action)

	imageGroup := r.Group("/image")
	{
		imageGroup.GET("", group.ImageHandler.Text)
		imageGroup.GET("/results", group.ImageHandler.Results)
	}

	r.GET("/admin", middleware.AdminSecretMiddleware(cfg.Cycle.AdminSecret), group.AdminHandler.Dashboard)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		apiGroup.GET("/health", group.HealthHandler.Health)
		apiGroup.GET("/health/db", group.HealthHandler.Store)

		apiGroup.GET("/frame", group.FrameHandler.FrameJSON)
		apiGroup.POST("/vibe-response", group.FrameHandler.VibeResponse)

		cronGroup := apiGroup.Group("/cron")
		cronGroup.Use(middleware.CronSecretMiddleware(cfg.Cycle.CronSecret))
		{
			cronGroup.GET("/reset", group.CronHandler.Reset)
			cronGroup.POST("/reset", group.CronHandler.Reset)
			cronGroup.GET("/announce", group.CronHandler.Announce)
			cronGroup.POST("/announce", group.CronHandler.Announce)
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AdminSecretMiddleware(cfg.Cycle.AdminSecret))
		{
			adminGroup.GET("/votes", group.AdminHandler.Votes)
			adminGroup.GET("/history", group.AdminHandler.History)
		}
	}

	return r
}
