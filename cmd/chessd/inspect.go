package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// inspection is the JSON form of an inspected board.
type inspection struct {
	FEN    string         `json:"fen"`
	Square *chess.Square  `json:"square,omitempty"`
	Piece  string         `json:"piece,omitempty"`
	Moves  []chess.Square `json:"moves"`
}

// parseSquare parses "file,rank", e.g. "4,6".
func parseSquare(s string) (chess.Square, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return chess.Square{}, fmt.Errorf("square %q: want file,rank", s)
	}
	file, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return chess.Square{}, fmt.Errorf("square %q: file: %w", s, err)
	}
	rank, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return chess.Square{}, fmt.Errorf("square %q: rank: %w", s, err)
	}
	sq := chess.Sq(file, rank)
	if sq.OffBoard() {
		return sq, fmt.Errorf("square %q: %w", s, errors.ErrOutOfBounds)
	}
	return sq, nil
}

// runInspect prints the board given by fen (the standard position when
// empty) and, when square is set, the legal moves of the piece on it.
func runInspect(cfg *config.Config, fen, square string) error {
	board := chess.NewStandardBoard()
	if fen != "" {
		b, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			return err
		}
		board = b
	}

	var (
		piece *chess.Piece
		moves []chess.Square
	)
	if square != "" {
		sq, err := parseSquare(square)
		if err != nil {
			return err
		}
		piece = board.At(sq)
		if piece == nil {
			return &errors.MoveError{Err: errors.ErrNoPiece, From: sq.String()}
		}
		moves = engine.FindLegalMoves(piece, board)
		cfg.Logf(2, "%s on %s: %d legal moves", piece, sq, len(moves))
	}

	w := cfg.OutputFile
	switch cfg.Output.Format {
	case config.FEN:
		fmt.Fprintln(w, engine.BoardToFEN(board))
	case config.JSON:
		return writeJSON(w, board, piece, moves)
	default:
		var marks []chess.Square
		if cfg.Output.MarkMoves {
			marks = moves
		}
		io.WriteString(w, renderBoard(board, marks))
	}

	if piece != nil && cfg.Output.ShowMoves {
		fmt.Fprintf(w, "%s on %s: %s\n", piece, piece.Pos, formatSquares(moves))
	}
	return nil
}

func writeJSON(w io.Writer, board *chess.Board, piece *chess.Piece, moves []chess.Square) error {
	out := inspection{FEN: engine.BoardToFEN(board), Moves: []chess.Square{}}
	if piece != nil {
		sq := piece.Pos
		out.Square = &sq
		out.Piece = piece.String()
		if moves != nil {
			out.Moves = moves
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// renderBoard draws the board like chess.Board.String, with '*' on marked
// squares.
func renderBoard(b *chess.Board, marks []chess.Square) string {
	if len(marks) == 0 {
		return b.String()
	}
	marked := make(map[chess.Square]bool, len(marks))
	for _, sq := range marks {
		marked[sq] = true
	}

	var sb strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sq := chess.Sq(file, rank)
			switch p := b.At(sq); {
			case marked[sq]:
				sb.WriteByte('*')
			case p != nil:
				sb.WriteString(p.Glyph())
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatSquares(squares []chess.Square) string {
	if len(squares) == 0 {
		return "no legal moves"
	}
	parts := make([]string, len(squares))
	for i, sq := range squares {
		parts[i] = sq.String()
	}
	return strings.Join(parts, " ")
}
