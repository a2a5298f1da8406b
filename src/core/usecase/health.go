package usecase

import (
	"context"
	"log/slog"
	"time"

	"pressroom/src/core/ports"
)

// HealthService reports service liveness and backend reachability.
type HealthService struct {
	checker ports.HealthChecker
	log     *slog.Logger
	started time.Time
}

func NewHealthService(checker ports.HealthChecker, log *slog.Logger) *HealthService {
	return &HealthService{checker: checker, log: log, started: time.Now()}
}

// HealthStatus is the payload for the health endpoint.
type HealthStatus struct {
	Status    string  `json:"status"`
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
	Database  string  `json:"database"`
}

// Check pings the storage backend and reports overall status.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "healthy",
		Uptime:    time.Since(s.started).Seconds(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  "up",
	}
	if s.checker == nil {
		status.Database = "none"
		return status
	}
	if err := s.checker.Health(ctx); err != nil {
		s.log.Warn("health check failed", "error", err)
		status.Status = "degraded"
		status.Database = "down"
	}
	return status
}
