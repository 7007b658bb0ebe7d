package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

const healthTimeout = 2 * time.Second

type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	MediaHost string `json:"mediaHost"`
	Cache     string `json:"cache"`
}

// HealthHandler pings the backing services. cache may be nil when redis is
// not configured; it never degrades the status.
func HealthHandler(store, host, cache port.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Store:     ping(r.Context(), store),
			MediaHost: ping(r.Context(), host),
			Cache:     ping(r.Context(), cache),
		}
		status := http.StatusOK
		if resp.Store != "connected" || resp.MediaHost != "connected" {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, status, resp)
	}
}

func ping(ctx context.Context, p port.Pinger) string {
	if p == nil {
		return "disabled"
	}
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		logger.Warnf(ctx, "health check failed: %v", err)
		return "disconnected"
	}
	return "connected"
}
