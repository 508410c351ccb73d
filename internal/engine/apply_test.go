package engine

import (
	"testing"

	"github.com/lgbarn/negamax-chess/internal/chess"
)

// mustBoard parses fen or fails the test.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// findUCI returns the legal move with the given UCI text or fails the test.
func findUCI(t testing.TB, board *chess.Board, uci string) Move {
	t.Helper()
	for _, m := range LegalMoves(board, board.ToMove) {
		if m.UCI() == uci {
			return m
		}
	}
	t.Fatalf("move %s is not legal in %s", uci, BoardToFEN(board))
	return Move{}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		move     string
		wantKind MoveKind
		wantFEN  string
	}{
		{
			name:     "double step sets en passant target",
			fen:      InitialFEN,
			move:     "e2e4",
			wantKind: Normal,
			wantFEN:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:     "knight move advances halfmove clock",
			fen:      InitialFEN,
			move:     "g1f3",
			wantKind: Normal,
			wantFEN:  "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name:     "black move advances fullmove number",
			fen:      "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move:     "g8f6",
			wantKind: Normal,
			wantFEN:  "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
		{
			name:     "capture",
			fen:      "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			move:     "e4d5",
			wantKind: Capture,
			wantFEN:  "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2",
		},
		{
			name:     "en passant removes the passed pawn",
			fen:      "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			move:     "f5e6",
			wantKind: EnPassant,
			wantFEN:  "rnbqkbnr/pppp1ppp/4P3/8/8/8/PPPPP1PP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:     "kingside castling",
			fen:      "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:     "e1g1",
			wantKind: Castling,
			wantFEN:  "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:     "queenside castling",
			fen:      "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:     "e8c8",
			wantKind: Castling,
			wantFEN:  "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name:     "rook move drops one right",
			fen:      "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:     "h1h2",
			wantKind: Normal,
			wantFEN:  "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 1 1",
		},
		{
			name:     "capturing a rook drops its right",
			fen:      "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:     "a1a8",
			wantKind: Capture,
			wantFEN:  "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:     "promotion",
			fen:      "8/P7/8/8/8/8/8/k6K w - - 0 1",
			move:     "a7a8q",
			wantKind: Promotion,
			wantFEN:  "Q7/8/8/8/8/8/8/k6K b - - 0 1",
		},
		{
			name:     "capture promotion",
			fen:      "1r6/P7/8/8/8/8/8/k6K w - - 0 1",
			move:     "a7b8q",
			wantKind: CapturePromotion,
			wantFEN:  "1Q6/8/8/8/8/8/8/k6K b - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			before := *board

			m := findUCI(t, board, tt.move)
			if m.Kind != tt.wantKind {
				t.Errorf("Kind = %v; want %v", m.Kind, tt.wantKind)
			}

			Apply(board, m)
			if got := BoardToFEN(board); got != tt.wantFEN {
				t.Errorf("after Apply FEN = %q; want %q", got, tt.wantFEN)
			}

			Revert(board, m)
			if *board != before {
				t.Errorf("after Revert FEN = %q; want %q", BoardToFEN(board), tt.fen)
			}
		})
	}
}

func TestApplyUpdatesCheckFlags(t *testing.T) {
	board := mustBoard(t, "8/P7/8/8/8/8/8/k6K w - - 0 1")
	m := findUCI(t, board, "a7a8q")

	Apply(board, m)
	if !board.InCheck(chess.Black) {
		t.Errorf("InCheck(Black) = false after a8=Q; want true")
	}
	Revert(board, m)
	if board.InCheck(chess.Black) {
		t.Errorf("InCheck(Black) = true after revert; want false")
	}
}

// Every legal move, at every node of a shallow tree, must revert to a board
// that is equal field for field.
func TestApplyRevertRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp4PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	depth := 3
	if testing.Short() {
		depth = 2
	}

	var walk func(t *testing.T, board *chess.Board, depth int)
	walk = func(t *testing.T, board *chess.Board, depth int) {
		if depth == 0 {
			return
		}
		for _, m := range LegalMoves(board, board.ToMove) {
			before := *board
			hash := board.PositionHash()

			Apply(board, m)
			walk(t, board, depth-1)
			Revert(board, m)

			if *board != before {
				t.Fatalf("%s: Revert left %q; want %q", m.UCI(), BoardToFEN(board), BoardToFEN(&before))
			}
			if got := board.PositionHash(); got != hash {
				t.Fatalf("%s: PositionHash() = %x after revert; want %x", m.UCI(), got, hash)
			}
		}
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			walk(t, mustBoard(t, fen), depth)
		})
	}
}
