package engine

import (
	"strings"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestFindLegalMoves_Pinned(t *testing.T) {
	b := chess.NewEmptyBoard()
	testutil.Put(b, chess.King, chess.White, 4, 7)
	rook := testutil.Put(b, chess.Rook, chess.White, 4, 5)
	testutil.Put(b, chess.Rook, chess.Black, 4, 0)

	testutil.AssertEqual(t, len(FindMoves(rook, b)), 13)
	testutil.AssertSquares(t, FindLegalMoves(rook, b),
		testutil.Squares(4, 6, 4, 4, 4, 3, 4, 2, 4, 1, 4, 0))
}

func TestFindLegalMoves_BlockCheck(t *testing.T) {
	b := chess.NewEmptyBoard()
	testutil.Put(b, chess.King, chess.White, 4, 7)
	testutil.Put(b, chess.Rook, chess.Black, 4, 0)
	knight := testutil.Put(b, chess.Knight, chess.White, 2, 4)

	testutil.AssertEqual(t, len(FindMoves(knight, b)), 8)
	testutil.AssertSquares(t, FindLegalMoves(knight, b), testutil.Squares(4, 3, 4, 5))
}

func TestFindLegalMoves_DefendedAttacker(t *testing.T) {
	b := chess.NewEmptyBoard()
	king := testutil.Put(b, chess.King, chess.White, 4, 7)
	testutil.Put(b, chess.Queen, chess.Black, 4, 6)
	testutil.Put(b, chess.Rook, chess.Black, 4, 0)

	testutil.AssertEqual(t, len(FindMoves(king, b)), 5)
	testutil.AssertSquares(t, FindLegalMoves(king, b), nil)
	testutil.AssertNotNil(t, FindLegalMoves(king, b))
}

func TestFindLegalMoves_Unconstrained(t *testing.T) {
	b := chess.NewStandardBoard()
	for _, p := range b.All() {
		testutil.AssertSquares(t, FindLegalMoves(p, b), FindMoves(p, b), "%v on %v", p, p.Pos)
	}
}

func TestIsLegalMove(t *testing.T) {
	b := chess.NewEmptyBoard()
	testutil.Put(b, chess.King, chess.White, 4, 7)
	rook := testutil.Put(b, chess.Rook, chess.White, 4, 5)
	testutil.Put(b, chess.Rook, chess.Black, 4, 0)

	testutil.AssertTrue(t, IsLegalMove(rook, b, chess.Sq(4, 0)))
	testutil.AssertFalse(t, IsLegalMove(rook, b, chess.Sq(0, 5)), "pinned")
	testutil.AssertFalse(t, IsLegalMove(rook, b, chess.Sq(5, 6)), "not reachable")
	testutil.AssertFalse(t, IsLegalMove(rook, b, chess.Sq(4, 8)), "off board")
}

func TestLegalMovesForColor(t *testing.T) {
	b := chess.NewStandardBoard()
	testutil.AssertEqual(t, len(LegalMovesForColor(b, chess.White)), 20)
	testutil.AssertEqual(t, len(LegalMovesForColor(b, chess.Black)), 20)

	first := LegalMovesForColor(b, chess.White)[0]
	testutil.AssertEqual(t, first, chess.MovePair{From: chess.Sq(0, 6), To: chess.Sq(0, 5)})

	testutil.AssertEqual(t, len(LegalMovesForColor(chess.NewEmptyBoard(), chess.White)), 0)
}

// TestFindLegalMoves_MatchesReference compares the destinations of every
// piece of the side to move with an independent move generator. Positions
// carry no castling or en passant rights, which this engine does not model.
func TestFindLegalMoves_MatchesReference(t *testing.T) {
	positions := map[string]string{
		"Initial":         "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"InitialBlack":    "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		"Italian":         "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
		"ItalianBlack":    "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b - - 5 4",
		"Kiwipete":        "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"KiwipeteBlack":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1",
		"RookEndgame":     "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
		"PinnedRook":      "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
		"PromotionWhite":  "8/P6k/8/8/8/8/6Kp/8 w - - 0 1",
		"PromotionBlack":  "8/P6k/8/8/8/8/6Kp/8 b - - 0 1",
		"QueenCheck":      "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1",
		"DoubleCheck":     "4k3/8/8/8/8/5n2/8/r3K3 w - - 0 1",
		"PawnBlockedPair": "4k3/8/8/8/3p4/3P4/8/4K3 w - - 0 1",
	}

	for name, fen := range positions {
		t.Run(name, func(t *testing.T) {
			b, err := NewBoardFromFEN(fen)
			testutil.AssertNoError(t, err)

			opt, err := nchess.FEN(fen)
			if err != nil {
				t.Fatalf("reference FEN %q: %v", fen, err)
			}
			game := nchess.NewGame(opt)

			expected := make(map[chess.Square][]chess.Square)
			seen := make(map[chess.MovePair]bool)
			for _, m := range game.ValidMoves() {
				pair := chess.MovePair{From: fromReference(m.S1()), To: fromReference(m.S2())}
				if seen[pair] {
					continue // one entry per promotion piece
				}
				seen[pair] = true
				expected[pair.From] = append(expected[pair.From], pair.To)
			}

			side := chess.White
			if strings.Fields(fen)[1] == "b" {
				side = chess.Black
			}
			for _, p := range b.Pieces(side) {
				testutil.AssertSameSquares(t, FindLegalMoves(p, b), expected[p.Pos], "%v on %v", p, p.Pos)
			}
		})
	}
}

// fromReference converts a reference square (file a = 0, rank 1 = 0) into a
// board square, where rank 0 is the eighth rank.
func fromReference(sq nchess.Square) chess.Square {
	return chess.Sq(int(sq.File()), chess.BoardSize-1-int(sq.Rank()))
}
