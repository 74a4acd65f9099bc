// Package state holds the single most recent query/answer pair for session
// continuity. The slot is process-wide, last-write-wins and does not survive
// a restart; per-user scoping and history are deliberately out of scope.
package state

import (
	"sync"

	"github.com/nyayamitra/nyayamitra/internal/rag"
)

// SavedQuery is one persisted query/answer pair.
type SavedQuery struct {
	Query  rag.Query
	Answer rag.Answer
}

// Store is a mutex-protected single slot. The zero value is not usable;
// create one with NewStore and inject it where needed.
type Store struct {
	mu   sync.RWMutex
	last *SavedQuery
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Save atomically replaces the stored pair. Callers only save fully
// produced answers, so a concurrent LoadLast never observes a partial pair.
func (s *Store) Save(query rag.Query, answer rag.Answer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &SavedQuery{Query: query, Answer: answer}
}

// LoadLast returns the most recently saved pair. The boolean is false when
// nothing has been saved since process start.
func (s *Store) LoadLast() (SavedQuery, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return SavedQuery{}, false
	}
	return *s.last, true
}
