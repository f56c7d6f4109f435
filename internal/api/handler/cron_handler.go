package handler

import (
	"VibeCheck/internal/api/dto"
	"VibeCheck/internal/pkg/notify"
	"VibeCheck/internal/pkg/response"
	"VibeCheck/internal/service"
	"fmt"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

// CronHandler 供外部调度器触发的每日重置与公布
type CronHandler struct {
	cycleSvc service.CycleService
	notifier notify.Notifier
}

func NewCronHandler(cycleSvc service.CycleService, notifier notify.Notifier) *CronHandler {
	return &CronHandler{cycleSvc: cycleSvc, notifier: notifier}
}

func (h *CronHandler) Reset(c *gin.Context) {
	day, ok := h.targetDay(c)
	if !ok {
		return
	}

	log.InfoContext(c.Request.Context(), "Resetting votes", "day", day)
	deleted, err := h.cycleSvc.ResetDay(c.Request.Context(), day)
	if err != nil {
		response.ErrorStatus(c, err)
		return
	}

	response.Success(c, &dto.ResetResultDTO{
		Success:      true,
		Message:      fmt.Sprintf("Daily data reset successfully for %s", day),
		Day:          day,
		DeletedCount: deleted,
	})
}

// Announce 统计并通知下游，通知失败不影响返回的统计结果
func (h *CronHandler) Announce(c *gin.Context) {
	day, ok := h.targetDay(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	result, err := h.cycleSvc.AnnounceDay(ctx, day)
	if err != nil {
		response.ErrorStatus(c, err)
		return
	}

	notified := true
	if h.notifier != nil {
		if err := h.notifier.Notify(ctx, result); err != nil {
			log.WarnContext(ctx, "announce notification incomplete", "day", day, "err", err)
			notified = false
		}
	}

	response.Success(c, &dto.AnnounceResultDTO{
		Success:     true,
		Message:     "Daily mood announced successfully",
		Day:         day,
		WinningMood: service.MoodOf(result.WinningOption),
		VoteCount:   result.WinningCount,
		TotalVotes:  result.TotalVotes,
		Results:     service.MoodCounts(result, h.cycleSvc.Catalog()),
		Notified:    notified,
	})
}

func (h *CronHandler) targetDay(c *gin.Context) (string, bool) {
	var q dto.CycleQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Abort(c, response.BadRequest, service.ErrInvalidDay.Error())
		return "", false
	}
	if q.Day == "" {
		return h.cycleSvc.Today(), true
	}
	return q.Day, true
}
