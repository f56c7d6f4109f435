package handler

import (
	"VibeCheck/internal/api/dto"
	"VibeCheck/internal/api/middleware"
	"VibeCheck/internal/model"
	"VibeCheck/internal/pkg/frame"
	"VibeCheck/internal/service"
	"errors"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var errInvalidAction = errors.New("invalid request data")

type FrameHandler struct {
	voteSvc service.VoteService
	catalog *model.Catalog
	now     func() time.Time
}

func NewFrameHandler(voteSvc service.VoteService, catalog *model.Catalog) *FrameHandler {
	return &FrameHandler{voteSvc: voteSvc, catalog: catalog, now: time.Now}
}

// Home 心情选择卡片
func (h *FrameHandler) Home(c *gin.Context) {
	h.renderCard(c, frame.MoodCard(middleware.BaseURL(c), "/action", h.catalog, h.now().UnixMilli()))
}

// Login 登录引导卡片
func (h *FrameHandler) Login(c *gin.Context) {
	h.renderCard(c, frame.LoginCard(middleware.BaseURL(c), h.now().UnixMilli()))
}

// Action 按钮回调，buttonIndex 从 1 开始
func (h *FrameHandler) Action(c *gin.Context) {
	mood, err := h.castVote(c)
	if err != nil {
		if errors.Is(err, errInvalidAction) {
			c.String(http.StatusBadRequest, "Invalid request data")
			return
		}
		log.ErrorContext(c.Request.Context(), "Error handling action", "err", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	h.renderCard(c, frame.VotedCard(middleware.BaseURL(c), mood, h.now().UnixMilli()))
}

// FrameJSON JSON 形式的心情卡片
func (h *FrameHandler) FrameJSON(c *gin.Context) {
	card := frame.MoodCard(middleware.BaseURL(c), "/api/vibe-response", h.catalog, h.now().UnixMilli())
	c.JSON(http.StatusOK, card.ToJSON())
}

// VibeResponse JSON 回调，携带有效数据时同时记录投票
func (h *FrameHandler) VibeResponse(c *gin.Context) {
	if _, err := h.castVote(c); err != nil && !errors.Is(err, errInvalidAction) {
		log.ErrorContext(c.Request.Context(), "Error handling vibe response", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, frame.ThanksCard(middleware.BaseURL(c), h.now().UnixMilli()).ToJSON())
}

// castVote 解析回调并记录投票，输入不合法时返回 errInvalidAction
func (h *FrameHandler) castVote(c *gin.Context) (model.Mood, error) {
	var req dto.FrameActionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WarnContext(c.Request.Context(), "invalid frame action", "err", err)
		return model.Mood{}, errInvalidAction
	}

	optionIndex := req.UntrustedData.ButtonIndex - 1
	mood, ok := h.catalog.At(optionIndex)
	if !ok {
		return model.Mood{}, errInvalidAction
	}

	vote, err := h.voteSvc.CastVote(c.Request.Context(), req.UntrustedData.FID.String(), optionIndex)
	if err != nil {
		if errors.Is(err, service.ErrParamInvalid) || errors.Is(err, service.ErrInvalidOption) {
			return model.Mood{}, errInvalidAction
		}
		return model.Mood{}, err
	}

	log.InfoContext(c.Request.Context(), "vote recorded", "user_id", vote.UserID, "day", vote.Day, "option", optionIndex)
	return mood, nil
}

func (h *FrameHandler) renderCard(c *gin.Context, card *frame.Card) {
	page, err := frame.RenderHTML(card)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "render frame failed", "err", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
