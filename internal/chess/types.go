// Package chess provides core chess types: colours, piece kinds, squares,
// pieces and the 8x8 board they live on.
package chess

import "fmt"

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Color represents the colour of a piece.
type Color int

const (
	White Color = iota
	Black
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank delta of one pawn step for the colour.
// White starts on the high ranks and moves towards rank 0.
func (c Color) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PromotionRank returns the far rank on which a pawn of this colour promotes.
func (c Color) PromotionRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// HomeRank returns the rank the colour's pawns start on.
func (c Color) HomeRank() int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

// BackRank returns the rank the colour's major pieces start on.
func (c Color) BackRank() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Square is a board coordinate. File is the x axis and Rank the y axis;
// both are in [0,7] for squares on the board.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// OffBoard reports whether either coordinate lies outside [0,7].
func (s Square) OffBoard() bool {
	return s.File < 0 || s.File >= BoardSize || s.Rank < 0 || s.Rank >= BoardSize
}

// Offset returns the square df files and dr ranks away.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the square as "(file,rank)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
}

// MovePair is a source-destination square pair.
type MovePair struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}
