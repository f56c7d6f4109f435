package response

import (
	"VibeCheck/internal/api/dto"
	"VibeCheck/internal/service"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func run(t *testing.T, handle func(c *gin.Context)) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handle(c)

	var body dto.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return w, body
}

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid option", service.ErrInvalidOption, BadRequest},
		{"wrapped store error", fmt.Errorf("list: %w", service.ErrStoreUnavailable), ServiceUnavailable},
		{"invalid day", service.ErrInvalidDay, BadRequest},
		{"unknown", errors.New("boom"), InternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := run(t, func(c *gin.Context) { Error(c, tt.err) })
			if w.Code != http.StatusOK {
				t.Errorf("http status = %d, want 200", w.Code)
			}
			if body.Code != tt.code {
				t.Errorf("code = %d, want %d", body.Code, tt.code)
			}
		})
	}
}

func TestError_HidesUnknownMessage(t *testing.T) {
	_, body := run(t, func(c *gin.Context) { Error(c, errors.New("mongo: secret host")) })
	if body.Message != service.UnExpectedError.Error() {
		t.Errorf("message = %q", body.Message)
	}
}

func TestErrorStatus(t *testing.T) {
	w, body := run(t, func(c *gin.Context) { ErrorStatus(c, service.ErrStoreUnavailable) })
	if w.Code != http.StatusServiceUnavailable || body.Code != ServiceUnavailable {
		t.Errorf("status = %d, code = %d", w.Code, body.Code)
	}
}

func TestSuccess(t *testing.T) {
	_, body := run(t, func(c *gin.Context) { Success(c, gin.H{"ok": true}) })
	if body.Code != Ok || body.Message != "success" {
		t.Errorf("body = %+v", body)
	}
}

func TestErrorStatus_HidesWrappedDriverText(t *testing.T) {
	err := fmt.Errorf("list votes: %w: %w", service.ErrStoreUnavailable, errors.New("server selection error: 10.0.0.5:27017"))
	w, body := run(t, func(c *gin.Context) { ErrorStatus(c, err) })
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d", w.Code)
	}
	if body.Message != service.ErrStoreUnavailable.Error() {
		t.Errorf("message = %q, want %q", body.Message, service.ErrStoreUnavailable.Error())
	}
}
