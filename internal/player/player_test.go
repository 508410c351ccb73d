package player

import (
	"bytes"
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/config"
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

func quietConfig() *config.Config {
	return config.NewConfigBuilder().WithVerbosity(0).Build()
}

func TestHumanMakeMove(t *testing.T) {
	board := engine.NewInitialBoard()
	white := NewHuman(chess.White)

	m := mustFind(t, board, "e2e4")
	applied, err := white.MakeMove(board, m)
	if err != nil {
		t.Fatalf("MakeMove() error = %v", err)
	}
	if !applied.SameAs(m) {
		t.Errorf("applied %s; want %s", applied.UCI(), m.UCI())
	}
	testutil.AssertEqual(t, engine.BoardToFEN(board), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
}

func TestHumanMakeMoveRejects(t *testing.T) {
	t.Run("stale move", func(t *testing.T) {
		board := engine.NewInitialBoard()
		stale := mustFind(t, board, "e2e4")
		engine.Apply(board, stale)
		engine.Apply(board, mustFind(t, board, "e7e5"))
		before := engine.BoardToFEN(board)

		_, err := NewHuman(chess.White).MakeMove(board, stale)
		testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
		var moveErr *errors.MoveError
		if !stderrors.As(err, &moveErr) {
			t.Fatalf("error %v is not a *MoveError", err)
		}
		testutil.AssertEqual(t, moveErr.MoveText, "e2e4")
		testutil.AssertEqual(t, engine.BoardToFEN(board), before)
	})

	t.Run("wrong side", func(t *testing.T) {
		board := engine.NewInitialBoard()
		m := mustFind(t, board, "e2e4")
		_, err := NewHuman(chess.Black).MakeMove(board, m)
		testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
		testutil.AssertEqual(t, engine.BoardToFEN(board), engine.InitialFEN)
	})
}

// A move from an earlier position is matched to its current counterpart.
func TestHumanMakeMoveRefreshesSnapshot(t *testing.T) {
	board := engine.NewInitialBoard()
	old := mustFind(t, board, "g1f3")
	engine.Apply(board, old)
	engine.Apply(board, mustFind(t, board, "g8f6"))
	engine.Apply(board, mustFind(t, board, "f3g1"))
	engine.Apply(board, mustFind(t, board, "f6g8"))
	before := *board

	applied, err := NewHuman(chess.White).MakeMove(board, old)
	if err != nil {
		t.Fatalf("MakeMove() error = %v", err)
	}
	engine.Revert(board, applied)
	if *board != before {
		t.Errorf("Revert() restored %s; want %s", engine.BoardToFEN(board), engine.BoardToFEN(&before))
	}
}

func TestHumanMakeMoveText(t *testing.T) {
	board := engine.NewInitialBoard()
	if _, err := NewHuman(chess.White).MakeMoveText(board, "Nf3"); err != nil {
		t.Fatalf("MakeMoveText(Nf3) error = %v", err)
	}
	_, err := NewHuman(chess.Black).MakeMoveText(board, "Nf3")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func mustFind(t *testing.T, board *chess.Board, text string) engine.Move {
	t.Helper()
	m, err := engine.FindMove(board, text)
	if err != nil {
		t.Fatalf("FindMove(%q) error = %v", text, err)
	}
	return m
}

func TestAgentChooseMove(t *testing.T) {
	agent := NewAgent(chess.White, quietConfig())
	defer agent.Close()

	board := mustBoard(t, "4k3/8/8/3q4/8/8/8/3QK3 w - - 0 1")
	before := *board

	m, err := agent.ChooseMove(context.Background(), board)
	if err != nil {
		t.Fatalf("ChooseMove() error = %v", err)
	}
	testutil.AssertEqual(t, m.UCI(), "d1d5")
	if *board != before {
		t.Errorf("board changed to %s; the agent must not apply its move", engine.BoardToFEN(board))
	}
	if agent.Busy() {
		t.Error("Busy() = true after the choice arrived")
	}
}

func TestAgentIsDeterministic(t *testing.T) {
	agent := NewAgent(chess.Black, quietConfig())
	defer agent.Close()

	board := mustBoard(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 3 3")
	var first Choice
	for i := 0; i < 3; i++ {
		reply, err := agent.ChooseMoveAsync(context.Background(), board)
		if err != nil {
			t.Fatalf("ChooseMoveAsync() error = %v", err)
		}
		c := <-reply
		if c.Err != nil {
			t.Fatalf("Choice.Err = %v", c.Err)
		}
		if i == 0 {
			first = c
			continue
		}
		if c.Result.Value != first.Result.Value || !c.Move.SameAs(first.Move) {
			t.Errorf("run %d: %s value %d; want %s value %d", i,
				c.Move.UCI(), c.Result.Value, first.Move.UCI(), first.Result.Value)
		}
	}
}

func TestAgentRejectsOverlappingSearch(t *testing.T) {
	agent := NewAgent(chess.White, quietConfig())
	defer agent.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	board := engine.NewInitialBoard()
	reply, err := agent.ChooseMoveAsync(ctx, board)
	if err != nil {
		t.Fatalf("ChooseMoveAsync() error = %v", err)
	}

	// The first search may already be done; only an in-flight one blocks.
	if agent.Busy() {
		if _, err := agent.ChooseMoveAsync(ctx, engine.NewInitialBoard()); err != nil {
			testutil.AssertErrorIs(t, err, errors.ErrSearchInProgress)
		}
	}
	cancel()
	<-reply

	reply, err = agent.ChooseMoveAsync(context.Background(), board)
	if err != nil {
		t.Fatalf("ChooseMoveAsync() after a finished search error = %v", err)
	}
	<-reply
}

func TestAgentWrongSide(t *testing.T) {
	agent := NewAgent(chess.Black, quietConfig())
	defer agent.Close()

	_, err := agent.ChooseMove(context.Background(), engine.NewInitialBoard())
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	if agent.Busy() {
		t.Error("Busy() = true after a rejected request")
	}
}

func TestAgentNoLegalMoves(t *testing.T) {
	agent := NewAgent(chess.Black, quietConfig())
	defer agent.Close()

	_, err := agent.ChooseMove(context.Background(), mustBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"))
	testutil.AssertErrorIs(t, err, errors.ErrNoLegalMoves)
}

func TestAgentCancelled(t *testing.T) {
	agent := NewAgent(chess.White, quietConfig())
	defer agent.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	board := engine.NewInitialBoard()
	_, err := agent.ChooseMove(ctx, board)
	testutil.AssertErrorIs(t, err, context.Canceled)
	testutil.AssertEqual(t, engine.BoardToFEN(board), engine.InitialFEN)
}

func TestAgentClose(t *testing.T) {
	agent := NewAgent(chess.White, quietConfig())
	agent.Close()
	agent.Close()

	_, err := agent.ChooseMoveAsync(context.Background(), engine.NewInitialBoard())
	testutil.AssertErrorIs(t, err, errors.ErrPoolStopped)
	if agent.Busy() {
		t.Error("Busy() = true after Close")
	}
}

func TestAgentLogsSummary(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithVerbosity(1).WithLogFile(&syncWriter{w: &buf}).WithDepth(2).Build()
	agent := NewAgent(chess.White, cfg)

	_, err := agent.ChooseMove(context.Background(), mustBoard(t, "4k3/8/8/3q4/8/8/8/3QK3 w - - 0 1"))
	if err != nil {
		t.Fatalf("ChooseMove() error = %v", err)
	}
	agent.Close()

	testutil.AssertContains(t, buf.String(), "agent White: ")
	testutil.AssertContains(t, buf.String(), "depth 2: Qxd5 value")
}

// Players of both kinds satisfy Player.
func TestPlayerInterface(t *testing.T) {
	agent := NewAgent(chess.Black, quietConfig())
	defer agent.Close()

	players := []Player{NewHuman(chess.White), agent}
	testutil.AssertEqual(t, players[0].Colour(), chess.White)
	testutil.AssertEqual(t, players[1].Colour(), chess.Black)
	testutil.AssertEqual(t, players[0].Name(), "human (White)")
	testutil.AssertEqual(t, players[1].Name(), "agent (Black)")
}

type syncWriter struct {
	mu sync.Mutex
	w  *bytes.Buffer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
