package usecase

import (
	"context"
	"strings"
	"time"

	"skills-api/internal/domain"
	"skills-api/pkg/logger"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one component. A failing required component makes the
// service unavailable; an optional one only degrades it.
type HealthCheck struct {
	Name     string
	Required bool
	Ping     func(ctx context.Context) error
}

type healthUsecase struct {
	checks []HealthCheck
}

func NewHealthUsecase(checks ...HealthCheck) domain.HealthUsecase {
	return &healthUsecase{checks: checks}
}

func (u *healthUsecase) Check(ctx context.Context) domain.HealthReport {
	report := domain.HealthReport{
		Status:     domain.HealthOK,
		Components: make(map[string]string, len(u.checks)),
	}

	for _, hc := range u.checks {
		pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		err := hc.Ping(pingCtx)
		cancel()

		if err == nil {
			report.Components[hc.Name] = "up"
			continue
		}

		report.Components[hc.Name] = "down"
		logger.Log.Warn("health check failed", "component", hc.Name, "error", err)

		if hc.Required {
			report.Status = domain.HealthUnavailable
			if report.Failure == "" {
				report.Failure = capitalize(hc.Name) + " unavailable"
			}
		} else if report.Status == domain.HealthOK {
			report.Status = domain.HealthDegraded
		}
	}
	return report
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
