package api

import "VibeCheck/internal/api/handler"

// HandlersGroup 路由依赖的全部处理器
type HandlersGroup struct {
	FrameHandler  *handler.FrameHandler
	ImageHandler  *handler.ImageHandler
	CronHandler   *handler.CronHandler
	AdminHandler  *handler.AdminHandler
	HealthHandler *handler.HealthHandler
}
