package response

import (
	"VibeCheck/internal/api/dto"
	"VibeCheck/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
	ServiceUnavailable  = 503
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// Abort 以同名 HTTP 状态码返回并中断后续处理，供调度器等只看状态码的调用方使用
func Abort(c *gin.Context, businessCode int, message string) {
	c.AbortWithStatusJSON(businessCode, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	code, message := resolve(c, err)
	Fail(c, code, message)
}

// ErrorStatus 与 Error 相同，但 HTTP 状态码与业务码一致
func ErrorStatus(c *gin.Context, err error) {
	code, message := resolve(c, err)
	Abort(c, code, message)
}

func resolve(c *gin.Context, err error) (int, string) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return BadRequest, "参数错误"
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		return BadRequest, "Json错误"
	}

	code, sentinel, ok := service.Resolve(err)
	if !ok || code >= InternalServerError {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
	}
	return code, sentinel.Error()
}
