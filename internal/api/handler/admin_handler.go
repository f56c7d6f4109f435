package handler

import (
	"VibeCheck/internal/api/dto"
	"VibeCheck/internal/pkg/consts"
	"VibeCheck/internal/pkg/response"
	"VibeCheck/internal/service"
	"html/template"
	log "log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AdminTemplateName 管理后台模板名
const AdminTemplateName = "admin.tmpl"

const defaultHistoryDays = 7

type AdminHandler struct {
	cycleSvc   service.CycleService
	voteSvc    service.VoteService
	archiveSvc service.ArchiveService
}

func NewAdminHandler(cycleSvc service.CycleService, voteSvc service.VoteService, archiveSvc service.ArchiveService) *AdminHandler {
	return &AdminHandler{cycleSvc: cycleSvc, voteSvc: voteSvc, archiveSvc: archiveSvc}
}

// Dashboard 当天统计与最近投票
func (h *AdminHandler) Dashboard(c *gin.Context) {
	summary, err := h.cycleSvc.Summary(c.Request.Context(), h.cycleSvc.Today(), consts.RecentVoteMax)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "Error generating admin dashboard", "err", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.HTML(http.StatusOK, AdminTemplateName, summary)
}

// Votes 某天全部投票，默认当天
func (h *AdminHandler) Votes(c *gin.Context) {
	var q dto.CycleQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, service.ErrInvalidDay)
		return
	}
	if q.Day == "" {
		q.Day = h.voteSvc.Today()
	}

	votes, err := h.voteSvc.ListVotes(c.Request.Context(), q.Day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, votes)
}

// History 归档的每日结果，带 day 参数时只返回当天
func (h *AdminHandler) History(c *gin.Context) {
	if day := c.Query("day"); day != "" {
		archived, err := h.archiveSvc.Day(c.Request.Context(), day)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, archived)
		return
	}

	days := defaultHistoryDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		days = n
	}

	history, err := h.archiveSvc.History(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}

// AdminTemplate 供 gin.SetHTMLTemplate 使用
func AdminTemplate() *template.Template {
	return template.Must(template.New(AdminTemplateName).Parse(adminPage))
}

const adminPage = `<!DOCTYPE html>
<html>
<head>
    <title>Vibe Check Admin Dashboard</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; background-color: #f5f5f5; }
        h1 { color: #333; text-align: center; }
        .stats { background-color: white; border-radius: 8px; padding: 20px; margin-bottom: 20px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .mood-bar { display: flex; align-items: center; margin-bottom: 10px; }
        .mood-name { width: 140px; font-weight: bold; }
        .bar-container { flex-grow: 1; background-color: #eee; height: 20px; border-radius: 10px; overflow: hidden; }
        .bar { height: 100%; background-color: #4CAF50; color: white; font-size: 12px; text-align: center; }
        .winner { background-color: #FF9800; }
        .total { text-align: center; font-size: 18px; margin-top: 20px; }
        .date { text-align: center; color: #666; margin-bottom: 20px; }
        td, th { text-align: left; padding: 8px; border-bottom: 1px solid #ddd; }
    </style>
</head>
<body>
    <h1>Vibe Check Admin Dashboard</h1>
    <div class="date">Date: {{.Day}}</div>

    <div class="stats">
        <h2>Today's Mood Results</h2>
        {{- range .Results}}
        <div class="mood-bar">
            <div class="mood-name">{{.Emoji}} {{.Mood}}</div>
            <div class="bar-container">
                <div class="bar{{if .IsWinner}} winner{{end}}" style="width: {{.Percent}}%">{{.Count}} ({{.Percent}}%)</div>
            </div>
        </div>
        {{- end}}
        <div class="total">
            Total Votes: {{.TotalVotes}}
            {{- with .WinningMood}}<br>Winning Mood: {{.Emoji}} {{.Mood}}{{end}}
        </div>
    </div>

    <div class="stats">
        <h2>Recent Votes</h2>
        <table style="width: 100%; border-collapse: collapse;">
            <thead><tr><th>FID</th><th>Mood</th><th>Time</th></tr></thead>
            <tbody>
            {{- range .RecentVotes}}
                <tr><td>{{.UserID}}</td><td>{{.Mood}}</td><td>{{.UpdatedAt}}</td></tr>
            {{- end}}
            </tbody>
        </table>
    </div>
</body>
</html>
`
