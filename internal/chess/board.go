package chess

import "strings"

// Board is an 8x8 grid of optional pieces, indexed [file][rank].
// White's pieces start on ranks 6 and 7, Black's on ranks 1 and 0.
type Board struct {
	squares [BoardSize][BoardSize]*Piece
}

// backRank is the piece order along a back rank from file 0 to file 7.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewEmptyBoard creates a board with every square unoccupied.
func NewEmptyBoard() *Board {
	return &Board{}
}

// NewStandardBoard creates a board set up in the standard starting position.
func NewStandardBoard() *Board {
	b := NewEmptyBoard()
	for _, colour := range []Color{White, Black} {
		for file := 0; file < BoardSize; file++ {
			b.Place(NewPiece(backRank[file], colour, Sq(file, colour.BackRank())))
			b.Place(NewPiece(Pawn, colour, Sq(file, colour.HomeRank())))
		}
	}
	return b
}

// At returns the piece on sq, or nil if the square is empty or off the board.
func (b *Board) At(sq Square) *Piece {
	if sq.OffBoard() {
		return nil
	}
	return b.squares[sq.File][sq.Rank]
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return !sq.OffBoard() && b.squares[sq.File][sq.Rank] == nil
}

// Place puts p on the square given by its own position, replacing any occupant.
// Pieces with an off-board position are ignored.
func (b *Board) Place(p *Piece) {
	b.set(p.Pos, p)
}

// Remove empties sq and returns the piece that was there.
func (b *Board) Remove(sq Square) *Piece {
	p := b.At(sq)
	b.set(sq, nil)
	return p
}

func (b *Board) set(sq Square, p *Piece) {
	if sq.OffBoard() {
		return
	}
	b.squares[sq.File][sq.Rank] = p
}

// All returns every piece on the board in file-major order.
func (b *Board) All() []*Piece {
	var pieces []*Piece
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if p := b.squares[file][rank]; p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Pieces returns the pieces of the given colour in file-major order.
func (b *Board) Pieces(colour Color) []*Piece {
	var pieces []*Piece
	for _, p := range b.All() {
		if p.Color == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// King returns the first king of the given colour, or nil if there is none.
func (b *Board) King(colour Color) *Piece {
	for _, p := range b.All() {
		if p.Kind == King && p.Color == colour {
			return p
		}
	}
	return nil
}

// Copy creates a deep copy of the board. Pieces are cloned, so moves on the
// copy never touch the original's pieces.
func (b *Board) Copy() *Board {
	c := NewEmptyBoard()
	for _, p := range b.All() {
		clone := *p
		c.Place(&clone)
	}
	return c
}

// BoardState captures everything a simulated move can change, so the move
// can be undone exactly with RestoreState.
type BoardState struct {
	squares  [BoardSize][BoardSize]*Piece
	mover    *Piece
	moverPos Square
}

// Simulate moves the piece on `from` to `to` without promotion and without
// touching HasMoved, and returns the state needed to undo it. Callers must
// pass the result to RestoreState before anyone else observes the board.
func (b *Board) Simulate(from, to Square) BoardState {
	s := BoardState{squares: b.squares}
	mover := b.At(from)
	if mover == nil || to.OffBoard() {
		return s
	}
	s.mover = mover
	s.moverPos = mover.Pos

	b.set(from, nil)
	b.set(to, mover)
	mover.Pos = to
	return s
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.squares = s.squares
	if s.mover != nil {
		s.mover.Pos = s.moverPos
	}
}

// String renders the board one rank per line, rank 0 first, with "." for
// empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			if p := b.squares[file][rank]; p != nil {
				sb.WriteString(p.Glyph())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
