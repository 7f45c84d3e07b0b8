package scheduler

import (
	"sync"
	"time"
)

// HealthStatus is the last known state of one component.
type HealthStatus struct {
	Healthy     bool      `json:"healthy"`
	LastCheck   time.Time `json:"last_check"`
	LastSuccess time.Time `json:"last_success,omitzero"`
	LastError   error     `json:"-"`
	Message     string    `json:"message"`
}

// HealthReport is the JSON body of the health endpoint.
type HealthReport struct {
	Healthy    bool                    `json:"healthy"`
	Components map[string]HealthStatus `json:"components"`
}

// Health tracks generator, store and index health. It is shared by the
// display loop and the HTTP server.
type Health struct {
	mu         sync.RWMutex
	now        func() time.Time
	components map[string]HealthStatus
}

// NewHealth creates an empty tracker.
func NewHealth() *Health {
	return &Health{
		now:        time.Now,
		components: make(map[string]HealthStatus),
	}
}

// SetHealthy marks a component as healthy.
func (h *Health) SetHealthy(component, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	h.components[component] = HealthStatus{
		Healthy:     true,
		LastCheck:   now,
		LastSuccess: now,
		Message:     message,
	}
}

// SetUnhealthy marks a component as failing. The last success is kept.
func (h *Health) SetUnhealthy(component string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	status := h.components[component]
	status.Healthy = false
	status.LastCheck = h.now()
	status.LastError = err
	status.Message = err.Error()
	h.components[component] = status
}

// GetStatus returns a copy of a component's status, or nil if it was never reported.
func (h *Health) GetStatus(component string) *HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status, ok := h.components[component]
	if !ok {
		return nil
	}
	return &status
}

// Snapshot copies every component status.
func (h *Health) Snapshot() HealthReport {
	h.mu.RLock()
	defer h.mu.RUnlock()

	report := HealthReport{
		Healthy:    true,
		Components: make(map[string]HealthStatus, len(h.components)),
	}
	for name, status := range h.components {
		report.Components[name] = status
		if !status.Healthy {
			report.Healthy = false
		}
	}
	return report
}

// IsOverallHealthy returns true if no component is failing.
func (h *Health) IsOverallHealthy() bool {
	return h.Snapshot().Healthy
}
