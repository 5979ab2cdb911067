package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// MovePutsPlayerInCheck reports whether moving the piece on `from` to `to`
// would leave mover's king attacked. The move is played on b and undone
// before returning; cells, positions and HasMoved flags are left exactly as
// they were.
func MovePutsPlayerInCheck(from, to chess.Square, b *chess.Board, mover chess.Color) bool {
	state := b.Simulate(from, to)
	defer b.RestoreState(state)

	return IsInCheck(b, mover)
}

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(b *chess.Board, colour chess.Color) bool {
	king := b.King(colour)
	if king == nil {
		return false
	}
	return IsSquareAttacked(b, king.Pos, colour.Opposite())
}

// IsSquareAttacked returns true if a piece of byColour could capture on sq.
// Pawns attack their forward diagonals; every other piece attacks the squares
// its pseudo-legal moves reach.
func IsSquareAttacked(b *chess.Board, sq chess.Square, byColour chess.Color) bool {
	for _, p := range b.Pieces(byColour) {
		var targets []chess.Square
		if p.Kind == chess.Pawn {
			targets = pawnAttackSquares(p)
		} else {
			targets = FindMoves(p, b)
		}
		for _, target := range targets {
			if target == sq {
				return true
			}
		}
	}
	return false
}
