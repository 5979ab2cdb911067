package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves returns the single push, the double push for an unmoved pawn
// with both squares clear, then the diagonal captures (file-1 first).
func pawnMoves(p *chess.Piece, b *chess.Board) []chess.Square {
	var moves []chess.Square
	dir := p.Color.Forward()

	one := p.Pos.Offset(0, dir)
	if b.IsEmpty(one) {
		moves = append(moves, one)

		two := p.Pos.Offset(0, 2*dir)
		if !p.HasMoved && b.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	return append(moves, pawnCaptures(p, b)...)
}

// pawnCaptures returns the forward diagonals that hold an enemy piece.
func pawnCaptures(p *chess.Piece, b *chess.Board) []chess.Square {
	var captures []chess.Square
	for _, sq := range pawnAttackSquares(p) {
		if target := b.At(sq); target != nil && target.Color != p.Color {
			captures = append(captures, sq)
		}
	}
	return captures
}

// pawnAttackSquares returns the on-board forward diagonals of p regardless of
// what occupies them.
func pawnAttackSquares(p *chess.Piece) []chess.Square {
	var squares []chess.Square
	for _, df := range []int{-1, 1} {
		if sq := p.Pos.Offset(df, p.Color.Forward()); !sq.OffBoard() {
			squares = append(squares, sq)
		}
	}
	return squares
}
