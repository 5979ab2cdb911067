// Package session keeps live boards addressable by ID so that a renderer can
// query and move pieces over the network. Each board is guarded by its own
// mutex; the engine itself is single-threaded.
package session

import (
	"sync"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// subscriberBuffer is the number of snapshots queued per subscriber before
// further snapshots are dropped for it.
const subscriberBuffer = 8

// Session is one board and the clients watching it.
type Session struct {
	ID      string
	Created time.Time

	mu        sync.Mutex
	board     *chess.Board
	moves     int
	positions *hashing.PositionCounter
	subs      map[chan Snapshot]struct{}
	closed    bool
}

func newSession(id string, b *chess.Board) *Session {
	positions := hashing.NewPositionCounter()
	positions.Add(b)
	return &Session{
		ID:        id,
		Created:   time.Now(),
		board:     b,
		positions: positions,
		subs:      make(map[chan Snapshot]struct{}),
	}
}

// With runs fn with exclusive access to the board. fn must not retain b.
// Changes made by fn are not counted as moves or positions.
func (s *Session) With(fn func(b *chess.Board) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.board)
}

// Snapshot returns the current state of the board.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newSnapshot(s.ID, s.board, s.moves, s.positions)
}

// LegalMoves returns the legal destinations of the piece on sq.
func (s *Session) LegalMoves(sq chess.Square) ([]chess.Square, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.board.At(sq)
	if p == nil {
		return nil, &errors.MoveError{Err: errors.ErrNoPiece, From: sq.String()}
	}
	return engine.FindLegalMoves(p, s.board), nil
}

// Move plays a validated user move and sends the resulting snapshot to every
// subscriber.
func (s *Session) Move(from, to chess.Square) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := engine.ApplyUserMove(s.board, from, to); err != nil {
		return Snapshot{}, err
	}
	s.moves++
	s.positions.Add(s.board)

	snap := newSnapshot(s.ID, s.board, s.moves, s.positions)
	s.broadcast(snap)
	return snap, nil
}

// Subscribe registers for snapshots sent after each move. The returned
// function unsubscribes; it is safe to call more than once. The channel is
// closed when the session is deleted or the subscriber unsubscribes.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot, subscriberBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	s.subs[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() { s.unsubscribe(ch) })
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Session) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Session) unsubscribe(ch chan Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[ch]; ok {
		delete(s.subs, ch)
		close(ch)
	}
}

// broadcast must be called with s.mu held.
func (s *Session) broadcast(snap Snapshot) {
	for ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs {
		delete(s.subs, ch)
		close(ch)
	}
	s.closed = true
}
