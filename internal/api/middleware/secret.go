package middleware

import (
	"VibeCheck/internal/pkg/response"
	"VibeCheck/internal/service"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CronSecretMiddleware 校验调度器携带的 Bearer 密钥，未配置密钥时一律拒绝
func CronSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || !matches(token, secret) {
			response.ErrorStatus(c, service.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

// AdminSecretMiddleware 校验 ?secret= 参数
func AdminSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !matches(c.Query("secret"), secret) {
			c.String(http.StatusUnauthorized, service.ErrUnauthorized.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

func matches(given, secret string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(secret)) == 1
}
