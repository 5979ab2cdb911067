// Package engine provides move generation, check detection and move
// validation on top of the chess board types.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// generator produces the pseudo-legal destinations of one piece kind.
type generator func(p *chess.Piece, b *chess.Board) []chess.Square

// generators is indexed by chess.Kind.
var generators = [chess.NumKinds]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

// FindMoves returns the pseudo-legal destinations of p on b: the squares its
// movement geometry reaches, honouring blocking and capture rules but not
// whether the move would expose its own king. Every returned square is on
// the board. The order is fixed per kind and reproducible.
func FindMoves(p *chess.Piece, b *chess.Board) []chess.Square {
	if p == nil || p.Kind < 0 || p.Kind >= chess.NumKinds {
		return nil
	}
	return generators[p.Kind](p, b)
}

// FindAttacks returns the capture candidates of p: for a pawn its diagonal
// captures, for every other kind the moves that land on an enemy piece.
func FindAttacks(p *chess.Piece, b *chess.Board) []chess.Square {
	if p == nil {
		return nil
	}
	if p.Kind == chess.Pawn {
		return pawnCaptures(p, b)
	}
	var attacks []chess.Square
	for _, sq := range FindMoves(p, b) {
		if target := b.At(sq); target != nil && target.Color != p.Color {
			attacks = append(attacks, sq)
		}
	}
	return attacks
}
