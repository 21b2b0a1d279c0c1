package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is anything that can report its own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Healthy   bool            `json:"healthy"`
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// HealthMonitor periodically pings the backing services and keeps the latest
// snapshot in memory.
type HealthMonitor struct {
	checks   map[string]Pinger
	interval time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(interval time.Duration) *HealthMonitor {
	return &HealthMonitor{checks: map[string]Pinger{}, interval: interval}
}

// Register adds a named check. It must be called before Start.
func (h *HealthMonitor) Register(name string, p Pinger) {
	h.checks[name] = p
}

// Status returns latest stored health snapshot.
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Check runs every registered ping once and stores the result.
func (h *HealthMonitor) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Healthy: true, Services: make(map[string]bool, len(h.checks))}
	for name, p := range h.checks {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		ok := p.Ping(pctx) == nil
		cancel()
		status.Services[name] = ok
		status.Healthy = status.Healthy && ok
	}
	status.CheckedAt = time.Now()

	h.mu.Lock()
	h.current = status
	h.mu.Unlock()
	return status
}

// Start checks immediately and then on every interval until ctx is done.
func (h *HealthMonitor) Start(ctx context.Context) {
	h.Check(ctx)
	go func() {
		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.Check(ctx)
			}
		}
	}()
}
