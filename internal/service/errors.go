package service

import (
	"VibeCheck/internal/pkg/util"
	"VibeCheck/internal/repository"
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
	ServiceUnavailable  = 503
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrInvalidOption    = errors.New("无效的心情选项")
	ErrInvalidDay       = util.ErrInvalidDay
	ErrStoreUnavailable = repository.ErrStoreUnavailable
	ErrArchiveDisabled  = errors.New("归档未启用")
	ErrArchiveNotFound  = errors.New("该日期没有归档结果")
	ErrUnauthorized     = errors.New("Unauthorized")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrInvalidOption:    BadRequest,
	ErrInvalidDay:       BadRequest,
	ErrStoreUnavailable: ServiceUnavailable,
	ErrArchiveDisabled:  NotFound,
	ErrArchiveNotFound:  NotFound,
	ErrUnauthorized:     Unauthorized,
	UnExpectedError:     InternalServerError,
}

// CodeOf 沿错误链查找业务码
func CodeOf(err error) (int, bool) {
	code, _, ok := Resolve(err)
	return code, ok
}

// Resolve 沿错误链查找业务码与对外展示的哨兵错误，底层错误信息不外露
func Resolve(err error) (int, error, bool) {
	for sentinel, code := range ErrorMap {
		if errors.Is(err, sentinel) {
			return code, sentinel, true
		}
	}
	return InternalServerError, UnExpectedError, false
}
