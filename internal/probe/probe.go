// Package probe checks reachability of the configured collaboration server.
package probe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/collabview/boardbridge/internal/infrastructure/resilience"
)

// Status is the last observed reachability of the collaboration server.
type Status struct {
	ServerURL string    `json:"server_url"`
	Reachable bool      `json:"reachable"`
	CheckedAt time.Time `json:"checked_at,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Prober performs HTTP reachability checks behind a circuit breaker so a
// dead collaboration server does not get hammered on every health request.
// Session URI resolution never consults the prober; it only informs /health.
type Prober struct {
	serverURL string
	client    *resty.Client
	breaker   *resilience.Breaker
	logger    *zap.Logger

	mu   sync.RWMutex
	last Status
}

// New creates a prober for the given collaboration server URL. An empty URL
// yields a prober that reports unknown/unreachable without making requests.
func New(serverURL string, timeout time.Duration, logger *zap.Logger) *Prober {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "boardbridge-probe/1.0")

	breaker := resilience.New("collab-server", resilience.Settings{
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to resilience.State) {
			logger.Warn("probe circuit state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Prober{
		serverURL: serverURL,
		client:    client,
		breaker:   breaker,
		logger:    logger,
		last:      Status{ServerURL: serverURL},
	}
}

// Check probes the server once and records the outcome. Returns the updated
// status; the error mirrors Status.Error for callers that want it.
func (p *Prober) Check(ctx context.Context) (Status, error) {
	if p.serverURL == "" {
		return p.record(false, fmt.Errorf("no collaboration server configured"))
	}

	_, err := p.breaker.Execute(func() (interface{}, error) {
		resp, err := p.client.R().SetContext(ctx).Get(p.serverURL)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() >= 500 {
			return nil, fmt.Errorf("collab server returned %d", resp.StatusCode())
		}
		return nil, nil
	})
	if err != nil {
		return p.record(false, err)
	}
	return p.record(true, nil)
}

// Last returns the most recent status without probing.
func (p *Prober) Last() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

func (p *Prober) record(reachable bool, err error) (Status, error) {
	status := Status{
		ServerURL: p.serverURL,
		Reachable: reachable,
		CheckedAt: time.Now(),
	}
	if err != nil {
		status.Error = err.Error()
	}

	p.mu.Lock()
	p.last = status
	p.mu.Unlock()

	return status, err
}
