package domain

import "context"

const (
	HealthOK          = "ok"
	HealthDegraded    = "degraded"
	HealthUnavailable = "unavailable"
)

// HealthReport is the result of checking every backing component.
type HealthReport struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
	// Failure names the first required component that is down.
	Failure string `json:"-"`
}

func (r HealthReport) Healthy() bool {
	return r.Status != HealthUnavailable
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthReport
}
