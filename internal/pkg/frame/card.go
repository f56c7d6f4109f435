package frame

import (
	"VibeCheck/internal/pkg/consts"
	"net/url"
	"strconv"
)

// 按钮动作
const (
	ActionPost = "post"
	ActionLink = "link"
)

// Button 卡片按钮，Target 为空时回调到 PostURL
type Button struct {
	Label  string `json:"label"`
	Action string `json:"action,omitempty"`
	Target string `json:"target,omitempty"`
}

// Card 与客户端协议无关的卡片描述
type Card struct {
	Title   string
	Image   string
	PostURL string
	Buttons []Button
	Body    string
}

// JSON 客户端拉取的 JSON 卡片
type JSON struct {
	Version string   `json:"version"`
	Name    string   `json:"name"`
	Image   string   `json:"image"`
	Buttons []Button `json:"buttons"`
	PostURL string   `json:"post_url,omitempty"`
}

// ToJSON 转换为 JSON 形式
func (c *Card) ToJSON() *JSON {
	buttons := c.Buttons
	if buttons == nil {
		buttons = []Button{}
	}
	return &JSON{
		Version: consts.FrameVersion,
		Name:    c.Title,
		Image:   c.Image,
		Buttons: buttons,
		PostURL: c.PostURL,
	}
}

// ImageURL 生成卡片图片地址，t 用于绕过客户端缓存
func ImageURL(baseURL, text string, t int64) string {
	q := url.Values{}
	q.Set("text", text)
	q.Set("t", strconv.FormatInt(t, 10))
	return baseURL + "/image?" + q.Encode()
}
