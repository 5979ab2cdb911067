package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// FindLegalMoves returns the moves from FindMoves that do not leave p's own
// king attacked, in FindMoves order. p must be on b at p.Pos.
func FindLegalMoves(p *chess.Piece, b *chess.Board) []chess.Square {
	moves := FindMoves(p, b)
	legal := make([]chess.Square, 0, len(moves))
	for _, to := range moves {
		if !MovePutsPlayerInCheck(p.Pos, to, b, p.Color) {
			legal = append(legal, to)
		}
	}
	return legal
}

// IsLegalMove reports whether `to` is among p's legal moves.
func IsLegalMove(p *chess.Piece, b *chess.Board, to chess.Square) bool {
	for _, sq := range FindMoves(p, b) {
		if sq == to {
			return !MovePutsPlayerInCheck(p.Pos, to, b, p.Color)
		}
	}
	return false
}

// LegalMovesForColor returns every legal move of the given colour, grouped by
// piece in file-major order.
func LegalMovesForColor(b *chess.Board, colour chess.Color) []chess.MovePair {
	var moves []chess.MovePair
	for _, p := range b.Pieces(colour) {
		for _, to := range FindLegalMoves(p, b) {
			moves = append(moves, chess.MovePair{From: p.Pos, To: to})
		}
	}
	return moves
}
