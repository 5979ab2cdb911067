package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		white bool
		black bool
	}{
		{"starting position", InitialFEN, false, false},
		{"rook on an open file", "4r3/8/8/8/8/8/8/4K3 w - - 0 1", true, false},
		{"rook blocked by a pawn", "4r3/8/8/8/8/8/4P3/4K3 w - - 0 1", false, false},
		{"knight check", "4k3/8/8/8/8/3n4/8/4K3 w - - 0 1", true, false},
		{"white pawn checks upwards", "8/8/8/3k4/4P3/8/8/4K3 b - - 0 1", false, true},
		{"pawn does not check straight ahead", "8/8/8/4k3/4P3/8/8/4K3 b - - 0 1", false, false},
		{"bishops off the king diagonals", "4k3/8/8/8/8/8/8/B3K2b w - - 0 1", false, false},
		{"queen on the diagonal", "4k3/8/8/8/8/8/5q2/4K3 w - - 0 1", true, false},
		{"no kings", "8/8/8/8/8/8/8/R6r w - - 0 1", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, IsInCheck(b, chess.White), tt.white, "white in check")
			testutil.AssertEqual(t, IsInCheck(b, chess.Black), tt.black, "black in check")
		})
	}
}

func TestIsSquareAttacked(t *testing.T) {
	b := chess.NewEmptyBoard()
	testutil.Put(b, chess.Pawn, chess.Black, 3, 2)
	testutil.Put(b, chess.Rook, chess.White, 0, 7)

	tests := []struct {
		name   string
		sq     chess.Square
		colour chess.Color
		want   bool
	}{
		{"pawn diagonal left", chess.Sq(2, 3), chess.Black, true},
		{"pawn diagonal right", chess.Sq(4, 3), chess.Black, true},
		{"pawn push square", chess.Sq(3, 3), chess.Black, false},
		{"rook file", chess.Sq(0, 0), chess.White, true},
		{"rook rank", chess.Sq(7, 7), chess.White, true},
		{"wrong colour", chess.Sq(0, 0), chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, IsSquareAttacked(b, tt.sq, tt.colour), tt.want)
		})
	}
}

func TestMovePutsPlayerInCheck(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(b *chess.Board)
		from, to chess.Square
		want     bool
	}{
		{
			name: "pinned rook leaves the file",
			setup: func(b *chess.Board) {
				testutil.Put(b, chess.King, chess.White, 4, 7)
				testutil.Put(b, chess.Rook, chess.White, 4, 5)
				testutil.Put(b, chess.Rook, chess.Black, 4, 0)
			},
			from: chess.Sq(4, 5), to: chess.Sq(3, 5),
			want: true,
		},
		{
			name: "pinned rook slides along the file",
			setup: func(b *chess.Board) {
				testutil.Put(b, chess.King, chess.White, 4, 7)
				testutil.Put(b, chess.Rook, chess.White, 4, 5)
				testutil.Put(b, chess.Rook, chess.Black, 4, 0)
			},
			from: chess.Sq(4, 5), to: chess.Sq(4, 2),
			want: false,
		},
		{
			name: "pinned rook captures the pinner",
			setup: func(b *chess.Board) {
				testutil.Put(b, chess.King, chess.White, 4, 7)
				testutil.Put(b, chess.Rook, chess.White, 4, 5)
				testutil.Put(b, chess.Rook, chess.Black, 4, 0)
			},
			from: chess.Sq(4, 5), to: chess.Sq(4, 0),
			want: false,
		},
		{
			name: "king steps onto a pawn-attacked square",
			setup: func(b *chess.Board) {
				testutil.Put(b, chess.King, chess.White, 4, 4)
				testutil.Put(b, chess.Pawn, chess.Black, 3, 2)
			},
			from: chess.Sq(4, 4), to: chess.Sq(4, 3),
			want: true,
		},
		{
			name: "king steps away from the pawn",
			setup: func(b *chess.Board) {
				testutil.Put(b, chess.King, chess.White, 4, 4)
				testutil.Put(b, chess.Pawn, chess.Black, 3, 2)
			},
			from: chess.Sq(4, 4), to: chess.Sq(4, 5),
			want: false,
		},
		{
			name: "king steps next to the enemy king",
			setup: func(b *chess.Board) {
				testutil.Put(b, chess.King, chess.White, 4, 4)
				testutil.Put(b, chess.King, chess.Black, 4, 2)
			},
			from: chess.Sq(4, 4), to: chess.Sq(4, 3),
			want: true,
		},
		{
			name: "no king of the moving colour",
			setup: func(b *chess.Board) {
				testutil.Put(b, chess.Rook, chess.White, 4, 5)
				testutil.Put(b, chess.Rook, chess.Black, 4, 0)
			},
			from: chess.Sq(4, 5), to: chess.Sq(3, 5),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := chess.NewEmptyBoard()
			tt.setup(b)
			mover := b.At(tt.from)
			testutil.AssertEqual(t, MovePutsPlayerInCheck(tt.from, tt.to, b, mover.Color), tt.want)
		})
	}
}

func TestMovePutsPlayerInCheck_RestoresBoard(t *testing.T) {
	b, err := NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1")
	testutil.AssertNoError(t, err)

	type snapshot struct {
		Pos      chess.Square
		HasMoved bool
	}
	before := b.String()
	pieces := b.All()
	states := make([]snapshot, len(pieces))
	for i, p := range pieces {
		states[i] = snapshot{p.Pos, p.HasMoved}
	}

	for _, p := range pieces {
		for _, to := range FindMoves(p, b) {
			captured := b.At(to)
			MovePutsPlayerInCheck(p.Pos, to, b, p.Color)
			if b.At(to) != captured {
				t.Fatalf("%v to %v: square %v not restored", p, to, to)
			}
		}
	}

	testutil.AssertEqual(t, b.String(), before)
	for i, p := range pieces {
		testutil.AssertEqual(t, snapshot{p.Pos, p.HasMoved}, states[i], "piece %d (%v)", i, p)
		if b.At(p.Pos) != p {
			t.Errorf("%v is no longer on %v", p, p.Pos)
		}
	}
}
