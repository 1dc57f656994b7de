// Package state holds the host application's shared whiteboard state.
package state

import (
	"sync"

	"github.com/collabview/boardbridge/internal/shared/types"
)

// Store is the host state-commit sink for collaboration credentials.
// Commits are idempotent: re-applying the same details leaves the store in
// the same state, with last-write-wins semantics when details change.
type Store struct {
	mu      sync.RWMutex
	details *types.CollabDetails
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// CommitCollabDetails merges the validated credentials into shared state.
func (s *Store) CommitCollabDetails(details types.CollabDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := details
	s.details = &copied
}

// CollabDetails returns the committed credentials, if any.
func (s *Store) CollabDetails() (types.CollabDetails, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.details == nil {
		return types.CollabDetails{}, false
	}
	return *s.details, true
}

// Clear drops any committed credentials. Used when the hosting conference
// ends and its whiteboard session is no longer meaningful.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.details = nil
}
