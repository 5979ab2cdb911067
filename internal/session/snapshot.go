package session

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// PieceView is the wire form of a piece on the board.
type PieceView struct {
	Kind     string       `json:"kind"`
	Color    string       `json:"color"`
	Square   chess.Square `json:"square"`
	HasMoved bool         `json:"hasMoved"`
	Glyph    string       `json:"glyph"`
}

// Snapshot is a read-only copy of a board for renderers.
type Snapshot struct {
	ID           string      `json:"id"`
	FEN          string      `json:"fen"`
	Pieces       []PieceView `json:"pieces"`
	WhiteInCheck bool        `json:"whiteInCheck"`
	BlackInCheck bool        `json:"blackInCheck"`
	Moves        int         `json:"moves"`

	// Hash is the Zobrist hash of the placement in hex.
	Hash string `json:"hash"`
	// Repetitions counts how often this placement has occurred in the session.
	Repetitions int `json:"repetitions"`
}

// ETag identifies the snapshot for HTTP caching.
func (s Snapshot) ETag() string {
	return fmt.Sprintf(`"%s-%d"`, s.Hash, s.Moves)
}

func newSnapshot(id string, b *chess.Board, moves int, positions *hashing.PositionCounter) Snapshot {
	all := b.All()
	pieces := make([]PieceView, 0, len(all))
	for _, p := range all {
		pieces = append(pieces, PieceView{
			Kind:     p.Kind.String(),
			Color:    p.Color.String(),
			Square:   p.Pos,
			HasMoved: p.HasMoved,
			Glyph:    p.Glyph(),
		})
	}
	return Snapshot{
		ID:           id,
		FEN:          engine.BoardToFEN(b),
		Pieces:       pieces,
		WhiteInCheck: engine.IsInCheck(b, chess.White),
		BlackInCheck: engine.IsInCheck(b, chess.Black),
		Moves:        moves,
		Hash:         fmt.Sprintf("%016x", hashing.GenerateZobristHash(b)),
		Repetitions:  positions.Count(b),
	}
}
