package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

const defaultProbeTimeout = 3 * time.Second

// Pinger is a dependency whose connectivity can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Health serves the liveness and readiness endpoints.
type Health struct {
	deps    map[string]Pinger
	timeout time.Duration
}

// NewHealth pings deps on readiness checks. A non-positive timeout falls back
// to three seconds per check.
func NewHealth(deps map[string]Pinger, timeout time.Duration) *Health {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Health{deps: deps, timeout: timeout}
}

// Liveness handles GET /health.
func (h *Health) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready, answering 503 when any dependency
// fails its ping.
func (h *Health) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]dependencyStatus, len(h.deps))
	)
	for name, dep := range h.deps {
		wg.Add(1)
		go func(name string, dep Pinger) {
			defer wg.Done()
			res := dependencyStatus{Status: "ok"}
			if err := dep.Ping(ctx); err != nil {
				res = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			}
			mu.Lock()
			results[name] = res
			mu.Unlock()
		}(name, dep)
	}
	wg.Wait()

	resp := readinessResponse{Status: "ok", Dependencies: results}
	code := http.StatusOK
	for _, res := range results {
		if res.Status != "ok" {
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}
	return c.JSON(code, resp)
}
