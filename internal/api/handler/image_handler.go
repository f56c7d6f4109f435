package handler

import (
	"VibeCheck/internal/api/dto"
	"VibeCheck/internal/pkg/render"
	"VibeCheck/internal/service"
	"bytes"
	"errors"
	"image"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const defaultCardText = "Vibe Check!"

type ImageHandler struct {
	cycleSvc service.CycleService
}

func NewImageHandler(cycleSvc service.CycleService) *ImageHandler {
	return &ImageHandler{cycleSvc: cycleSvc}
}

// Text 渲染文字卡片
func (h *ImageHandler) Text(c *gin.Context) {
	text := c.DefaultQuery("text", defaultCardText)
	if text == "" {
		text = defaultCardText
	}
	h.writePNG(c, render.TextCard(text), "public, max-age=300")
}

// Results 渲染某天统计图，默认当天
func (h *ImageHandler) Results(c *gin.Context) {
	var q dto.CycleQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		c.String(http.StatusBadRequest, "Invalid day")
		return
	}
	day := q.Day
	if day == "" {
		day = h.cycleSvc.Today()
	}

	result, err := h.cycleSvc.AnnounceDay(c.Request.Context(), day)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDay) {
			c.String(http.StatusBadRequest, "Invalid day")
			return
		}
		log.ErrorContext(c.Request.Context(), "render results failed", "day", day, "err", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	counts := service.MoodCounts(result, h.cycleSvc.Catalog())
	bars := make([]render.Bar, 0, len(counts))
	for _, mc := range counts {
		bars = append(bars, render.Bar{
			Label:   mc.Mood,
			Count:   mc.Count,
			Percent: mc.Percent,
			Winner:  mc.IsWinner,
		})
	}
	h.writePNG(c, render.ResultsCard("Vibe Check "+day, bars), "no-store")
}

func (h *ImageHandler) writePNG(c *gin.Context, img image.Image, cacheControl string) {
	var buf bytes.Buffer
	if err := render.Encode(&buf, img); err != nil {
		log.ErrorContext(c.Request.Context(), "encode png failed", "err", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Header("Cache-Control", cacheControl)
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
