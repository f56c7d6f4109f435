package middleware

import (
	"VibeCheck/internal/api/dto"
	"VibeCheck/internal/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCommonMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		headers    map[string]string
		want       string
	}{
		{"configured wins", "https://vibe.example/", map[string]string{"X-Forwarded-Host": "other"}, "https://vibe.example"},
		{"forwarded headers", "", map[string]string{"X-Forwarded-Proto": "https", "X-Forwarded-Host": "proxy.example"}, "https://proxy.example"},
		{"request host", "", nil, "http://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CommonMiddleware(tt.configured))
			var got string
			r.GET("/", func(c *gin.Context) { got = BaseURL(c) })

			req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)
			if got != tt.want {
				t.Errorf("base url = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCronSecretMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
		want   int
	}{
		{"valid", "s3cret", "Bearer s3cret", http.StatusOK},
		{"wrong", "s3cret", "Bearer nope", http.StatusUnauthorized},
		{"missing", "s3cret", "", http.StatusUnauthorized},
		{"no scheme", "s3cret", "s3cret", http.StatusUnauthorized},
		{"unset secret", "", "Bearer ", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			reached := false
			r.GET("/cron", CronSecretMiddleware(tt.secret), func(c *gin.Context) {
				reached = true
				c.Status(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodGet, "/cron", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if reached != (tt.want == http.StatusOK) {
				t.Errorf("handler reached = %v", reached)
			}
			if tt.want == http.StatusUnauthorized {
				var body dto.Response
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("decode %q: %v", w.Body.String(), err)
				}
				if body.Code != service.Unauthorized || body.Message != service.ErrUnauthorized.Error() {
					t.Errorf("body = %+v", body)
				}
			}
		})
	}
}

func TestAdminSecretMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AdminSecretMiddleware("pw"), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin?secret=bad", nil))
	if w.Code != http.StatusUnauthorized || w.Body.String() != "Unauthorized" {
		t.Errorf("bad secret: %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin?secret=pw", nil))
	if w.Code != http.StatusOK {
		t.Errorf("good secret: %d", w.Code)
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.POST("/action", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/action", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("allow origin = %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestTraceMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("X-Trace-ID") != "abc" {
		t.Errorf("trace header = %q", w.Header().Get("X-Trace-ID"))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(w.Header().Get("X-Trace-ID")) != 36 {
		t.Errorf("generated trace id = %q", w.Header().Get("X-Trace-ID"))
	}
}
