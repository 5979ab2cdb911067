package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenPieceKinds maps upper-case FEN letters to piece kinds.
var fenPieceKinds = map[byte]chess.Kind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// NewBoardFromFEN creates a board from the piece placement field of a FEN
// string. The remaining fields are accepted and ignored. The first FEN rank
// (Black's back rank) becomes rank 0. Pawns away from their home rank are
// marked as having moved; every other piece is unmoved.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewEmptyBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement section of a FEN string.
func parsePiecePositions(board *chess.Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for rank, row := range rows {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			colour := chess.White
			upper := c
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
				upper = c - 'a' + 'A'
			}
			kind, ok := fenPieceKinds[upper]
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("too many squares in rank %d: %w", rank, errors.ErrInvalidFEN)
			}

			p := chess.NewPiece(kind, colour, chess.Sq(file, rank))
			p.HasMoved = kind == chess.Pawn && rank != colour.HomeRank()
			board.Place(p)
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d covers %d files: %w", rank, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// BoardToFEN returns the piece placement field of the board in FEN form.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		if rank > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			p := board.At(chess.Sq(file, rank))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := p.Kind.Letter()
			if p.Color == chess.Black {
				letter = letter - 'A' + 'a'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}
