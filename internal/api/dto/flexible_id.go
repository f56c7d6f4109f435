package dto

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/goccy/go-json"
)

var errInvalidID = errors.New("id must be a number or string")

// FlexibleID 兼容数字与字符串两种 JSON 形式的用户标识
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)
		return nil
	}
	if _, err := strconv.ParseInt(string(b), 10, 64); err != nil {
		return errInvalidID
	}
	*f = FlexibleID(b)
	return nil
}

func (f FlexibleID) String() string {
	return string(f)
}
