package engine

import (
	"testing"

	"github.com/lgbarn/negamax-chess/internal/chess"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N vs K+N", "4kn2/8/8/8/8/8/8/4KN2 w - - 0 1", false},
		{"standard starting position", "", false}, // empty fen means use initial board
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var board *chess.Board
			if tt.fen == "" {
				board = NewInitialBoard()
			} else {
				var err error
				board, err = NewBoardFromFEN(tt.fen)
				if err != nil {
					t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
				}
			}

			got := HasInsufficientMaterial(board)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFiftyMoveDraw(t *testing.T) {
	tests := []struct {
		fen  string
		want bool
	}{
		{"4k3/8/8/8/8/8/8/R3K3 w - - 99 80", false},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 100 80", true},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 0 80", false},
	}
	for _, tt := range tests {
		board, err := NewBoardFromFEN(tt.fen)
		if err != nil {
			t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
		}
		if got := IsFiftyMoveDraw(board); got != tt.want {
			t.Errorf("IsFiftyMoveDraw(%q) = %v; want %v", tt.fen, got, tt.want)
		}
	}
}

// The clock crosses the limit only through quiet moves.
func TestFiftyMoveClockAdvances(t *testing.T) {
	board, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 99 80")
	if err != nil {
		t.Fatal(err)
	}
	m := findUCI(t, board, "a1a2")
	Apply(board, m)
	if !IsFiftyMoveDraw(board) {
		t.Errorf("IsFiftyMoveDraw() = false after quiet move at clock 99")
	}
	Revert(board, m)
	if IsFiftyMoveDraw(board) {
		t.Errorf("IsFiftyMoveDraw() = true after revert")
	}
}
