package search

import (
	"context"
	"testing"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/engine"
	"github.com/lgbarn/negamax-chess/internal/errors"
	"github.com/lgbarn/negamax-chess/internal/testutil"
)

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error = %v", fen, err)
	}
	return board
}

// minimax is an unpruned negamax used as a reference for the pruned search.
func minimax(board *chess.Board, depth, checkPenalty int) int {
	colour := board.ToMove
	moves := engine.LegalMoves(board, colour)
	if depth == 0 || len(moves) == 0 {
		return Evaluate(board, colour, checkPenalty)
	}
	best := -infinity
	for _, m := range moves {
		engine.Apply(board, m)
		value := -minimax(board, depth-1, checkPenalty)
		engine.Revert(board, m)
		if value > best {
			best = value
		}
	}
	return best
}

func TestSearchMatchesMinimax(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
	}{
		{"initial depth 2", engine.InitialFEN, 2},
		{"initial depth 3", engine.InitialFEN, 3},
		{"kiwipete depth 2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
		{"rook endgame depth 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
		{"black to move depth 3", "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 3 3", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			want := minimax(board, tt.depth, DefaultCheckPenalty)

			res, err := Search(context.Background(), board, Options{Depth: tt.depth, CheckPenalty: DefaultCheckPenalty})
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if !res.Found {
				t.Fatal("Search() found no move")
			}
			testutil.AssertEqual(t, res.Value, want, "value")
			testutil.AssertEqual(t, engine.BoardToFEN(board), tt.fen, "board after Search")
		})
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	board := mustBoard(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	before := *board

	first, err := Search(context.Background(), board, DefaultOptions())
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := Search(context.Background(), board, DefaultOptions())
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if again.Value != first.Value || !again.Move.SameAs(first.Move) || again.Nodes != first.Nodes {
			t.Errorf("run %d: %s value %d nodes %d; want %s value %d nodes %d", i,
				again.Move.UCI(), again.Value, again.Nodes, first.Move.UCI(), first.Value, first.Nodes)
		}
	}
	if *board != before {
		t.Errorf("board changed: %s", engine.BoardToFEN(board))
	}
}

func TestSearchFindsMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"hanging queen", "4k3/8/8/3q4/8/8/8/3QK3 w - - 0 1", "d1d5"},
		{"hanging rook for black", "4k3/8/8/8/8/8/r7/R3K3 b - - 0 1", "a2a1"},
		{"pawn takes knight", "4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1", "e4d5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			res, err := Search(context.Background(), board, DefaultOptions())
			if err != nil || !res.Found {
				t.Fatalf("Search() = found %v, error %v", res.Found, err)
			}
			testutil.AssertEqual(t, res.Move.UCI(), tt.want)
		})
	}
}

func TestSearchStatistics(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	res, err := Search(context.Background(), board, Options{Depth: 3, CheckPenalty: DefaultCheckPenalty})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if res.Nodes == 0 || res.Leaves == 0 {
		t.Errorf("Nodes = %d, Leaves = %d; want both > 0", res.Nodes, res.Leaves)
	}
	if res.Transpositions == 0 {
		t.Error("Transpositions = 0; king shuffles reach the same squares by different orders")
	}
	if res.Leaves > res.Nodes {
		t.Errorf("Leaves = %d > Nodes = %d", res.Leaves, res.Nodes)
	}

	if len(res.PV) == 0 || len(res.PV) > 3 {
		t.Fatalf("len(PV) = %d; want 1..3", len(res.PV))
	}
	if !res.PV[0].SameAs(res.Move) {
		t.Errorf("PV starts with %s; want %s", res.PV[0].UCI(), res.Move.UCI())
	}

	// The PV must be playable in order.
	for _, m := range res.PV {
		if _, err := engine.FindMove(board, m.UCI()); err != nil {
			t.Fatalf("PV move %s: %v", m.UCI(), err)
		}
		engine.Apply(board, m)
	}
}

func TestSearchNoLegalMoves(t *testing.T) {
	board := mustBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	res, err := Search(context.Background(), board, DefaultOptions())
	testutil.AssertErrorIs(t, err, errors.ErrNoLegalMoves)
	if res.Found {
		t.Errorf("Found = true with no legal moves")
	}
}

func TestSearchCancelled(t *testing.T) {
	board := mustBoard(t, engine.InitialFEN)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Search(ctx, board, DefaultOptions())
	testutil.AssertErrorIs(t, err, context.Canceled)
	if res.Found {
		t.Errorf("Found = true after cancellation before the first move")
	}
	testutil.AssertEqual(t, engine.BoardToFEN(board), engine.InitialFEN)
}

func TestSearchDepthBelowOne(t *testing.T) {
	board := mustBoard(t, engine.InitialFEN)
	res, err := Search(context.Background(), board, Options{Depth: 0})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if !res.Found || len(res.PV) != 1 {
		t.Errorf("Found = %v, len(PV) = %d; want a one-move line", res.Found, len(res.PV))
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("initial position is level", func(t *testing.T) {
		board := mustBoard(t, engine.InitialFEN)
		testutil.AssertEqual(t, Evaluate(board, chess.White, DefaultCheckPenalty), 0, "White")
		testutil.AssertEqual(t, Evaluate(board, chess.Black, DefaultCheckPenalty), 0, "Black")
	})

	t.Run("symmetric in colour", func(t *testing.T) {
		board := mustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
		testutil.AssertEqual(t, Evaluate(board, chess.White, 50), -Evaluate(board, chess.Black, 50))
	})

	t.Run("extra queen", func(t *testing.T) {
		board := mustBoard(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
		if got := Evaluate(board, chess.White, 0); got <= 800 {
			t.Errorf("Evaluate() = %d; want > 800", got)
		}
	})

	t.Run("check penalty", func(t *testing.T) {
		board := mustBoard(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
		testutil.AssertEqual(t, Evaluate(board, chess.White, 75), Evaluate(board, chess.White, 0)-75, "White")
		testutil.AssertEqual(t, Evaluate(board, chess.Black, 75), Evaluate(board, chess.Black, 0)+75, "Black")
	})
}

func TestSquareBonus(t *testing.T) {
	e4 := chess.NewPiece(chess.Pawn, chess.White, chess.MustParsePosition("e4"))
	e5 := chess.NewPiece(chess.Pawn, chess.Black, chess.MustParsePosition("e5"))
	testutil.AssertEqual(t, SquareBonus(e4, false), 20)
	testutil.AssertEqual(t, SquareBonus(e5, false), SquareBonus(e4, false), "black reads the table mirrored")

	king := chess.NewPiece(chess.King, chess.White, chess.MustParsePosition("g1"))
	testutil.AssertEqual(t, SquareBonus(king, false), 30, "middlegame")
	testutil.AssertEqual(t, SquareBonus(king, true), -30, "endgame")
}

func TestIsEndgame(t *testing.T) {
	tests := []struct {
		fen  string
		want bool
	}{
		{engine.InitialFEN, false},
		{"4k3/8/8/8/8/8/8/3QK3 w - - 0 1", false},
		{"4k3/8/8/8/8/8/8/3RK3 w - - 0 1", true},
	}
	for _, tt := range tests {
		if got := IsEndgame(mustBoard(t, tt.fen)); got != tt.want {
			t.Errorf("IsEndgame(%q) = %v; want %v", tt.fen, got, tt.want)
		}
	}
}

func BenchmarkSearchDepth3(b *testing.B) {
	board, err := engine.NewBoardFromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		_, _ = Search(context.Background(), board, DefaultOptions())
	}
}
