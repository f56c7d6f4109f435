package middleware

import (
	"VibeCheck/internal/pkg/consts"
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// CommonMiddleware 解析对外访问地址，优先使用配置，其次是反向代理头
func CommonMiddleware(configured string) gin.HandlerFunc {
	configured = strings.TrimRight(configured, "/")
	return func(c *gin.Context) {
		baseURL := configured

		if baseURL == "" {
			scheme := "http"
			if c.Request.TLS != nil {
				scheme = "https"
			}
			if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
				scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
			}
			host := c.Request.Host
			if fwd := c.GetHeader("X-Forwarded-Host"); fwd != "" {
				host = strings.TrimSpace(strings.Split(fwd, ",")[0])
			}
			baseURL = fmt.Sprintf("%s://%s", scheme, host)
		}

		c.Set(consts.BaseURL, baseURL)
		newCtx := context.WithValue(c.Request.Context(), consts.BaseURL, baseURL)
		c.Request = c.Request.WithContext(newCtx)
		c.Next()
	}
}

// BaseURL 读取 CommonMiddleware 写入的地址
func BaseURL(c *gin.Context) string {
	return c.GetString(consts.BaseURL)
}
