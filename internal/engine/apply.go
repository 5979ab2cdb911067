package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyUserMove validates and plays a player move from `from` to `to`.
// It returns the piece standing on `to` afterwards, which is a new queen when
// the move promoted a pawn. Errors are *errors.MoveError wrapping
// ErrNoPiece, ErrOutOfBounds or ErrIllegalMove; on error b is unchanged.
func ApplyUserMove(b *chess.Board, from, to chess.Square) (*chess.Piece, error) {
	p := b.At(from)
	if p == nil {
		return nil, &errors.MoveError{Err: errors.ErrNoPiece, From: from.String(), To: to.String()}
	}
	if to.OffBoard() {
		return nil, &errors.MoveError{Err: errors.ErrOutOfBounds, Piece: p.String(), From: from.String(), To: to.String()}
	}
	if !IsLegalMove(p, b, to) {
		return nil, &errors.MoveError{Err: errors.ErrIllegalMove, Piece: p.String(), From: from.String(), To: to.String()}
	}

	if err := p.UserMove(to, b); err != nil {
		return nil, &errors.MoveError{Err: err, Piece: p.String(), From: from.String(), To: to.String()}
	}
	return b.At(to), nil
}
