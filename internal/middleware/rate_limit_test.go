package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/fhuszti/portfolio-ms-go/internal/cache"
	"github.com/fhuszti/portfolio-ms-go/internal/mock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
}

func TestWithRateLimit_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	limiter := cache.NewRateLimiter(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "login", 2, time.Minute)
	h := WithRateLimit(limiter)(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
		if i == 2 && rec.Header().Get("Retry-After") == "" {
			t.Error("429 must carry Retry-After")
		}
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v", codes)
	}
}

func TestWithRateLimit_Mock(t *testing.T) {
	tests := []struct {
		name       string
		limiter    *mock.RateLimiter
		wantStatus int
		wantRetry  string
	}{
		{"allowed", &mock.RateLimiter{}, http.StatusOK, ""},
		{"denied", &mock.RateLimiter{Deny: true, RetryAfter: 1500 * time.Millisecond}, http.StatusTooManyRequests, "2"},
		{"limiter down fails open", &mock.RateLimiter{Err: errors.New("down")}, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
			req.RemoteAddr = "192.0.2.7:1234"
			rec := httptest.NewRecorder()
			WithRateLimit(tt.limiter)(okHandler()).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tt.wantStatus)
			}
			if rec.Header().Get("Retry-After") != tt.wantRetry {
				t.Errorf("Retry-After = %q; want %q", rec.Header().Get("Retry-After"), tt.wantRetry)
			}
			if tt.limiter.Keys[0] != "192.0.2.7" {
				t.Errorf("key = %q", tt.limiter.Keys[0])
			}
		})
	}
}
