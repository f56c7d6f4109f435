package handler

import (
	"VibeCheck/internal/pkg/response"
	"VibeCheck/internal/service"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	voteSvc service.VoteService
}

func NewHealthHandler(voteSvc service.VoteService) *HealthHandler {
	return &HealthHandler{voteSvc: voteSvc}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": "healthy"})
}

// Store 检查投票存储连通性
func (h *HealthHandler) Store(c *gin.Context) {
	if err := h.voteSvc.Ping(c.Request.Context()); err != nil {
		log.ErrorContext(c.Request.Context(), "Database connection error", "err", err)
		response.Abort(c, response.ServiceUnavailable, "Failed to connect to database")
		return
	}
	response.Success(c, gin.H{"message": "Successfully connected to database"})
}
