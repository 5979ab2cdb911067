package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestApplyUserMove(t *testing.T) {
	b := chess.NewStandardBoard()
	pawn := b.At(chess.Sq(4, 6))

	got, err := ApplyUserMove(b, chess.Sq(4, 6), chess.Sq(4, 4))
	testutil.AssertNoError(t, err)
	if got != pawn {
		t.Fatalf("ApplyUserMove returned %v, want the moved pawn", got)
	}
	testutil.AssertTrue(t, pawn.HasMoved)
	testutil.AssertEqual(t, pawn.Pos, chess.Sq(4, 4))
	testutil.AssertNil(t, b.At(chess.Sq(4, 6)))

	// A moved pawn loses its double step.
	_, err = ApplyUserMove(b, chess.Sq(4, 4), chess.Sq(4, 2))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestApplyUserMove_Errors(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to chess.Square
		want     error
	}{
		{"empty origin", InitialFEN, chess.Sq(4, 4), chess.Sq(4, 3), errors.ErrNoPiece},
		{"off-board origin", InitialFEN, chess.Sq(-1, 4), chess.Sq(0, 4), errors.ErrNoPiece},
		{"off-board destination", InitialFEN, chess.Sq(0, 6), chess.Sq(0, -1), errors.ErrOutOfBounds},
		{"unreachable square", InitialFEN, chess.Sq(1, 7), chess.Sq(1, 5), errors.ErrIllegalMove},
		{"own piece", InitialFEN, chess.Sq(0, 7), chess.Sq(0, 6), errors.ErrIllegalMove},
		{"pinned piece", "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1", chess.Sq(4, 6), chess.Sq(0, 6), errors.ErrIllegalMove},
		{"king into check", "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1", chess.Sq(4, 7), chess.Sq(3, 7), errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			before := BoardToFEN(b)
			mover := b.At(tt.from)

			got, err := ApplyUserMove(b, tt.from, tt.to)
			testutil.AssertNil(t, got)
			testutil.AssertErrorIs(t, err, tt.want)

			var moveErr *errors.MoveError
			if !stderrors.As(err, &moveErr) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.From, tt.from.String())
			testutil.AssertEqual(t, moveErr.To, tt.to.String())

			testutil.AssertEqual(t, BoardToFEN(b), before)
			if mover != nil {
				testutil.AssertFalse(t, mover.HasMoved, "rejected move marked the piece as moved")
			}
		})
	}
}

func TestApplyUserMove_Capture(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	pawn := b.At(chess.Sq(4, 4))

	got, err := ApplyUserMove(b, chess.Sq(4, 4), chess.Sq(3, 3))
	testutil.AssertNoError(t, err)
	if got != pawn {
		t.Fatalf("capturing piece = %v, want the white pawn", got)
	}
	testutil.AssertEqual(t, BoardToFEN(b), "4k3/8/8/3P4/8/8/8/4K3")
	testutil.AssertEqual(t, len(b.Pieces(chess.Black)), 1)
}

func TestApplyUserMove_Promotion(t *testing.T) {
	tests := []struct {
		name     string
		colour   chess.Color
		from, to chess.Square
	}{
		{"white", chess.White, chess.Sq(0, 1), chess.Sq(0, 0)},
		{"black", chess.Black, chess.Sq(7, 6), chess.Sq(7, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := chess.NewEmptyBoard()
			pawn := testutil.Put(b, chess.Pawn, tt.colour, tt.from.File, tt.from.Rank)
			pawn.HasMoved = true

			queen, err := ApplyUserMove(b, tt.from, tt.to)
			testutil.AssertNoError(t, err)
			testutil.AssertNotNil(t, queen)
			if queen == pawn {
				t.Fatal("promotion returned the pawn instead of a new queen")
			}
			testutil.AssertEqual(t, queen.Kind, chess.Queen)
			testutil.AssertEqual(t, queen.Color, tt.colour)
			testutil.AssertTrue(t, queen.HasMoved)
			testutil.AssertEqual(t, queen.Pos, tt.to)
			testutil.AssertNil(t, b.At(tt.from))
			testutil.AssertEqual(t, len(b.All()), 1)
		})
	}
}
