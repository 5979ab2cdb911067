package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Ray directions as (file delta, rank delta).
var (
	rookDirs   = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirs = [][2]int{{1, -1}, {-1, -1}, {1, 1}, {-1, 1}}

	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// FindForwardMoves returns the squares along p's file towards rank 7.
func FindForwardMoves(p *chess.Piece, b *chess.Board) []chess.Square {
	return ray(p, b, 0, 1)
}

// FindBackwardMoves returns the squares along p's file towards rank 0.
func FindBackwardMoves(p *chess.Piece, b *chess.Board) []chess.Square {
	return ray(p, b, 0, -1)
}

// FindRightMoves returns the squares along p's rank towards file 7.
func FindRightMoves(p *chess.Piece, b *chess.Board) []chess.Square {
	return ray(p, b, 1, 0)
}

// FindLeftMoves returns the squares along p's rank towards file 0.
func FindLeftMoves(p *chess.Piece, b *chess.Board) []chess.Square {
	return ray(p, b, -1, 0)
}

// rookMoves: forward, backward, right, left.
func rookMoves(p *chess.Piece, b *chess.Board) []chess.Square {
	return rays(p, b, rookDirs)
}

func bishopMoves(p *chess.Piece, b *chess.Board) []chess.Square {
	return rays(p, b, bishopDirs)
}

// queenMoves is the rook rays followed by the bishop rays.
func queenMoves(p *chess.Piece, b *chess.Board) []chess.Square {
	return append(rookMoves(p, b), bishopMoves(p, b)...)
}

func knightMoves(p *chess.Piece, b *chess.Board) []chess.Square {
	return steps(p, b, knightOffsets)
}

func kingMoves(p *chess.Piece, b *chess.Board) []chess.Square {
	return steps(p, b, kingOffsets)
}
