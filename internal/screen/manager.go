// Package screen manages mounted whiteboard screen instances.
package screen

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/collabview/boardbridge/internal/infrastructure/monitoring"
	"github.com/collabview/boardbridge/internal/shared/id"
	"github.com/collabview/boardbridge/internal/shared/types"
	"github.com/collabview/boardbridge/internal/whiteboard"
)

// Screen is one mounted whiteboard screen. Its session params are read once
// at mount and never change; the canonical URI is derived from them and is
// stable for the screen's life. A new render with new params is a new mount.
type Screen struct {
	ID        string              `json:"id"`
	Params    types.SessionParams `json:"params"`
	URI       string              `json:"uri"`
	CreatedAt time.Time           `json:"created_at"`

	bridge   *whiteboard.Bridge
	reporter *whiteboard.Reporter
}

// Bridge returns the screen's message bridge.
func (s *Screen) Bridge() *whiteboard.Bridge { return s.bridge }

// Reporter returns the screen's load-failure reporter.
func (s *Screen) Reporter() *whiteboard.Reporter { return s.reporter }

// ShouldAllow evaluates a navigation attempt against the screen's params.
func (s *Screen) ShouldAllow(requestedURL string) bool {
	return whiteboard.ShouldAllow(requestedURL, s.Params)
}

// Manager orchestrates screen lifecycle.
type Manager struct {
	mu      sync.RWMutex
	screens map[string]*Screen

	state            whiteboard.StateSink
	metadata         whiteboard.MetadataSink
	dialogs          whiteboard.DialogOpener
	metrics          *monitoring.Metrics
	defaultServerURL string
	logger           *zap.Logger
}

// NewManager creates a screen manager wired to the host's sinks.
func NewManager(state whiteboard.StateSink, metadata whiteboard.MetadataSink, dialogs whiteboard.DialogOpener, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		screens:  make(map[string]*Screen),
		state:    state,
		metadata: metadata,
		dialogs:  dialogs,
		logger:   logger,
	}
}

// WithMetrics adds metrics tracking to the manager.
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// WithDefaultServerURL sets the collaboration server applied to mounts whose
// route params carry none of their own.
func (m *Manager) WithDefaultServerURL(serverURL string) *Manager {
	m.defaultServerURL = serverURL
	return m
}

// Mount creates a screen instance for the given route parameters. The
// canonical URI is resolved here, once; an empty URI is a valid mount whose
// surface shows nothing actionable.
func (m *Manager) Mount(params types.SessionParams) *Screen {
	if params.CollabServerURL == "" {
		params.CollabServerURL = m.defaultServerURL
	}

	uri := whiteboard.Resolve(params)

	bridge := whiteboard.NewBridge(m.state, m.metadata, whiteboard.DecodedServerURL(params), m.logger)
	if m.metrics != nil {
		bridge = bridge.WithDiscardHook(func(reason string, _ []byte) {
			m.metrics.RecordMessageDiscarded(reason)
		})
	}

	screen := &Screen{
		ID:        string(id.NewScreenID()),
		Params:    params,
		URI:       uri,
		CreatedAt: time.Now(),
		bridge:    bridge,
		reporter:  whiteboard.NewReporter(m.dialogs),
	}

	m.mu.Lock()
	m.screens[screen.ID] = screen
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.RecordScreenMounted(uri != "")
	}

	m.logger.Info("whiteboard screen mounted",
		zap.String("screen_id", screen.ID),
		zap.Bool("resolvable", uri != ""),
	)

	return screen
}

// Get retrieves a screen by ID.
func (m *Manager) Get(screenID string) (*Screen, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	screen, ok := m.screens[screenID]
	return screen, ok
}

// Unmount removes a screen.
func (m *Manager) Unmount(screenID string) bool {
	m.mu.Lock()
	_, ok := m.screens[screenID]
	delete(m.screens, screenID)
	m.mu.Unlock()

	if ok {
		if m.metrics != nil {
			m.metrics.RecordScreenUnmounted()
		}
		m.logger.Info("whiteboard screen unmounted", zap.String("screen_id", screenID))
	}
	return ok
}

// List returns all mounted screens.
func (m *Manager) List() []*Screen {
	m.mu.RLock()
	defer m.mu.RUnlock()

	screens := make([]*Screen, 0, len(m.screens))
	for _, screen := range m.screens {
		screens = append(screens, screen)
	}
	return screens
}

// Stats contains screen manager statistics.
type Stats struct {
	Mounted      int `json:"mounted"`
	Unresolvable int `json:"unresolvable"`
}

// Stats returns current statistics.
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := Stats{Mounted: len(m.screens)}
	for _, screen := range m.screens {
		if screen.URI == "" {
			stats.Unresolvable++
		}
	}
	return stats
}
