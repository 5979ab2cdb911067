package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Store holds the live sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	limit    int
}

// NewStore creates a store holding at most limit sessions (0 = no limit).
func NewStore(limit int) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		limit:    limit,
	}
}

// Create registers a new session around b. A nil board starts from the
// standard position.
func (st *Store) Create(b *chess.Board) (*Session, error) {
	if b == nil {
		b = chess.NewStandardBoard()
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.limit > 0 && len(st.sessions) >= st.limit {
		return nil, fmt.Errorf("%d sessions open: %w", len(st.sessions), errors.ErrSessionLimit)
	}

	id := uuid.New().String()
	s := newSession(id, b)
	st.sessions[id] = s
	return s, nil
}

// Get returns the session with the given ID.
func (st *Store) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("session %q: %w", id, errors.ErrSessionNotFound)
	}

	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, errors.ErrSessionNotFound)
	}
	return s, nil
}

// Delete removes a session and closes its subscriber channels.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %q: %w", id, errors.ErrSessionNotFound)
	}
	s.close()
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Close deletes every session.
func (st *Store) Close() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}
