package util

import (
	"errors"
	"time"
)

// DayLayout 日期分区键格式
const DayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid day, expect YYYY-MM-DD")

// Clock 可替换的时钟，便于测试
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock 系统时钟
var SystemClock Clock = systemClock{}

// FixedClock 固定时间的时钟
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// DayOf 将时间换算到 loc 时区后取日期，loc 为空时使用 UTC
func DayOf(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DayLayout)
}

// ParseDay 严格解析 YYYY-MM-DD
func ParseDay(s string) (time.Time, error) {
	if len(s) != len(DayLayout) {
		return time.Time{}, ErrInvalidDay
	}
	t, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDay
	}
	return t, nil
}

// ShiftDay 日期偏移 n 天
func ShiftDay(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DayLayout), nil
}
