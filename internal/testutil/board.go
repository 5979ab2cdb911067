package testutil

import "github.com/lgbarn/chessrules-go/internal/chess"

// Put creates a piece of the given kind and colour at (file, rank) and places
// it on b.
func Put(b *chess.Board, kind chess.Kind, colour chess.Color, file, rank int) *chess.Piece {
	p := chess.NewPiece(kind, colour, chess.Sq(file, rank))
	b.Place(p)
	return p
}

// Squares builds a square list from (file, rank) pairs:
// Squares(1, 5, 1, 4) is [(1,5) (1,4)].
func Squares(coords ...int) []chess.Square {
	if len(coords)%2 != 0 {
		panic("testutil.Squares: odd number of coordinates")
	}
	squares := make([]chess.Square, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		squares = append(squares, chess.Sq(coords[i], coords[i+1]))
	}
	return squares
}
