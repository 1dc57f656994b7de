// Package dialog implements the host's dialog-opening interface.
package dialog

import (
	"sync"

	"go.uber.org/zap"

	"github.com/collabview/boardbridge/internal/shared/id"
	"github.com/collabview/boardbridge/internal/shared/types"
)

// Service assigns IDs to opened dialogs and keeps them until the host UI
// dismisses them. It satisfies whiteboard.DialogOpener.
type Service struct {
	mu     sync.RWMutex
	open   map[string]types.DialogDescriptor
	logger *zap.Logger
}

// NewService creates an empty dialog service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		open:   make(map[string]types.DialogDescriptor),
		logger: logger,
	}
}

// OpenDialog registers a dialog for presentation. Every call opens a new
// dialog instance, so repeated load failures each get their own.
func (s *Service) OpenDialog(d types.DialogDescriptor) {
	d.ID = string(id.NewDialogID())

	s.mu.Lock()
	s.open[d.ID] = d
	s.mu.Unlock()

	s.logger.Info("dialog opened",
		zap.String("dialog_id", d.ID),
		zap.String("kind", d.Kind),
	)
}

// Dismiss removes a dialog.
func (s *Service) Dismiss(dialogID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.open[dialogID]; !ok {
		return false
	}
	delete(s.open, dialogID)
	return true
}

// Open returns all currently open dialogs.
func (s *Service) Open() []types.DialogDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dialogs := make([]types.DialogDescriptor, 0, len(s.open))
	for _, d := range s.open {
		dialogs = append(dialogs, d)
	}
	return dialogs
}
