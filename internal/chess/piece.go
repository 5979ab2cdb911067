package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Piece is a single chess piece. Pieces are identified by pointer; the board
// holding them is the only authority on whether a piece is still in play.
type Piece struct {
	Pos      Square
	Color    Color
	HasMoved bool
	Kind     Kind
}

// NewPiece creates an unmoved piece at sq. It does not place it on a board.
func NewPiece(kind Kind, color Color, sq Square) *Piece {
	return &Piece{Pos: sq, Color: color, Kind: kind}
}

// String returns e.g. "White Knight".
func (p *Piece) String() string {
	return p.Color.String() + " " + p.Kind.String()
}

// IsOffBoard reports whether sq lies outside the board.
func (p *Piece) IsOffBoard(sq Square) bool {
	return sq.OffBoard()
}

var glyphs = [2][NumKinds]string{
	White: {"♙", "♘", "♗", "♖", "♕", "♔"},
	Black: {"♟", "♞", "♝", "♜", "♛", "♚"},
}

// Glyph returns the Unicode chess symbol used by renderers to draw the piece.
func (p *Piece) Glyph() string {
	if p.Kind < 0 || p.Kind >= NumKinds {
		return "?"
	}
	return glyphs[p.Color][p.Kind]
}

// Move relocates the piece to `to` on b without any legality check.
// Whatever occupies `to` is overwritten. A pawn reaching its promotion rank
// is replaced on the board by a new queen of the same colour; the pawn itself
// is left off the board.
//
// An off-board destination returns ErrOutOfBounds and changes nothing.
func (p *Piece) Move(to Square, b *Board) error {
	if to.OffBoard() {
		return fmt.Errorf("moving %s from %s to %s: %w", p, p.Pos, to, errors.ErrOutOfBounds)
	}

	from := p.Pos
	if b.At(from) == p {
		b.set(from, nil)
	}
	p.Pos = to

	if p.Kind == Pawn && to.Rank == p.Color.PromotionRank() {
		b.set(to, &Piece{Pos: to, Color: p.Color, HasMoved: true, Kind: Queen})
		return nil
	}

	b.set(to, p)
	return nil
}

// UserMove is Move for a player-initiated move: it also marks the piece as
// having moved. Simulated moves must call Move or Board.Simulate instead.
func (p *Piece) UserMove(to Square, b *Board) error {
	if to.OffBoard() {
		return fmt.Errorf("moving %s from %s to %s: %w", p, p.Pos, to, errors.ErrOutOfBounds)
	}
	p.HasMoved = true
	return p.Move(to, b)
}
