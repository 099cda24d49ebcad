package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tailortalk/config"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("Allows within burst, throttles beyond", func(t *testing.T) {
		mw := New(&mockLogger{}, config.CORSConfig{}, config.RateLimitConfig{PerMinute: 60, Burst: 2})
		r := newTestRouter(mw)

		statuses := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
			statuses = append(statuses, w.Code)
		}

		if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
			t.Errorf("first two requests should pass, got %v", statuses)
		}
		if statuses[2] != http.StatusTooManyRequests {
			t.Errorf("third request should be throttled, got %v", statuses)
		}
	})

	t.Run("Separate clients have separate buckets", func(t *testing.T) {
		mw := New(&mockLogger{}, config.CORSConfig{}, config.RateLimitConfig{PerMinute: 60, Burst: 1})
		r := newTestRouter(mw)

		first := httptest.NewRecorder()
		reqA := httptest.NewRequest(http.MethodGet, "/ping", nil)
		reqA.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(first, reqA)

		second := httptest.NewRecorder()
		reqB := httptest.NewRequest(http.MethodGet, "/ping", nil)
		reqB.RemoteAddr = "10.0.0.2:1234"
		r.ServeHTTP(second, reqB)

		if first.Code != http.StatusOK || second.Code != http.StatusOK {
			t.Errorf("distinct clients must not share a bucket: %d, %d", first.Code, second.Code)
		}
	})

	t.Run("X-Forwarded-For wins over RemoteAddr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

		if got := extractIP(req); got != "203.0.113.7" {
			t.Errorf("extractIP = %q, want 203.0.113.7", got)
		}
	})
}
