// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a destination square with a coordinate outside [0,7].
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrIllegalMove indicates a destination that is not among the piece's legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPiece indicates an origin square with no piece on it.
	ErrNoPiece = errors.New("no piece on square")

	// ErrInvalidFEN indicates a malformed FEN placement string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSessionNotFound indicates an unknown board session ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionLimit indicates the session store is full.
	ErrSessionLimit = errors.New("session limit reached")
)

// MoveError wraps errors with move context: the piece being moved and the
// origin and destination squares. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Piece string // Description of the mover, e.g. "White Pawn" (if known)
	From  string // Origin square (if known)
	To    string // Destination square
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("%s -> %s", e.From, e.To))
	case e.From != "":
		parts = append(parts, "from "+e.From)
	case e.To != "":
		parts = append(parts, "to "+e.To)
	}

	context := strings.Join(parts, " ")
	if context == "" {
		context = "move"
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
