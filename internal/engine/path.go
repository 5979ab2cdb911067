package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// ray walks from p's square in the (df, dr) direction. Empty squares are
// collected and the walk continues; the first occupied square ends the walk
// and is collected only when it holds an enemy piece.
func ray(p *chess.Piece, b *chess.Board, df, dr int) []chess.Square {
	var moves []chess.Square
	for sq := p.Pos.Offset(df, dr); !sq.OffBoard(); sq = sq.Offset(df, dr) {
		if occupant := b.At(sq); occupant != nil {
			if occupant.Color != p.Color {
				moves = append(moves, sq)
			}
			break
		}
		moves = append(moves, sq)
	}
	return moves
}

// rays concatenates ray for each direction, in order.
func rays(p *chess.Piece, b *chess.Board, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		moves = append(moves, ray(p, b, dir[0], dir[1])...)
	}
	return moves
}

// steps collects each offset square that is on the board and not held by a
// piece of p's colour.
func steps(p *chess.Piece, b *chess.Board, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, offset := range offsets {
		sq := p.Pos.Offset(offset[0], offset[1])
		if sq.OffBoard() {
			continue
		}
		if target := b.At(sq); target == nil || target.Color != p.Color {
			moves = append(moves, sq)
		}
	}
	return moves
}
