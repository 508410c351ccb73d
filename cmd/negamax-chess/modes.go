// modes.go - The tool's modes of operation
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/config"
	"github.com/lgbarn/negamax-chess/internal/engine"
	"github.com/lgbarn/negamax-chess/internal/game"
	"github.com/lgbarn/negamax-chess/internal/output"
	"github.com/lgbarn/negamax-chess/internal/player"
	"github.com/lgbarn/negamax-chess/internal/worker"
)

// runPerft prints the perft count of board to depth, optionally per root
// move.
func runPerft(ctx context.Context, w io.Writer, board *chess.Board, depth int, perMove, inParallel bool) error {
	start := time.Now()
	if !perMove {
		nodes := engine.Perft(board, depth)
		fmt.Fprintf(w, "perft %d: %d nodes in %v\n", depth, nodes, time.Since(start).Round(time.Millisecond))
		return nil
	}

	var (
		entries []engine.DivideEntry
		total   uint64
	)
	if inParallel {
		var err error
		entries, total, err = engine.PerftDivideParallel(ctx, board, depth)
		if err != nil {
			return err
		}
	} else {
		entries, total = engine.PerftDivide(board, depth)
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(w, "\nmoves %d, nodes %d in %v\n", len(entries), total, time.Since(start).Round(time.Millisecond))
	return nil
}

// runBest searches every position and prints the best moves in input
// order. Positions are searched by up to numWorkers goroutines, each on its
// own board.
func runBest(ctx context.Context, cfg *config.Config, boards []*chess.Board, numWorkers int) error {
	if len(boards) == 0 {
		return nil
	}
	pool := worker.NewPoolWithOptions(worker.SearchFunc(),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(len(boards)))
	pool.Start()
	for i, board := range boards {
		pool.Submit(worker.WorkItem{Index: i, Ctx: ctx, Board: board, Options: cfg.Search.Options()})
	}
	go pool.Close()

	results := make([]worker.ProcessResult, len(boards))
	for res := range pool.Results() {
		results[res.Index] = res
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	for _, res := range results {
		report := output.SearchReport{Board: res.Board, Result: res.Result, Elapsed: res.Elapsed, Err: res.Err}
		if err := w.WriteSearch(report); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return ctx.Err()
}

// runSelfPlay lets two agents play g for up to plies moves.
func runSelfPlay(ctx context.Context, cfg *config.Config, g *game.Game, plies int) error {
	white := player.NewAgent(chess.White, cfg)
	black := player.NewAgent(chess.Black, cfg)
	defer white.Close()
	defer black.Close()
	if err := g.SetPlayers(white, black); err != nil {
		return err
	}

	for i := 0; i < plies && !g.Status().IsOver(); i++ {
		rec, err := g.PlayAgentTurn(ctx)
		if err != nil {
			return err
		}
		if cfg.Output.ShowFEN && !cfg.Output.JSONFormat {
			fmt.Fprintf(cfg.OutputFile, "%s %s\n", output.FormatRecord(cfg, rec), g.FEN())
		}
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := w.WriteGame(g); err != nil {
		return err
	}
	return w.Close()
}

// runInteractive plays a game between a person reading and typing on in
// and cfg.OutputFile, and an agent.
func runInteractive(ctx context.Context, in io.Reader, cfg *config.Config, g *game.Game, human chess.Colour) error {
	agent := player.NewAgent(human.Opposite(), cfg)
	defer agent.Close()
	players := map[chess.Colour]player.Player{human: player.NewHuman(human), human.Opposite(): agent}
	if err := g.SetPlayers(players[chess.White], players[chess.Black]); err != nil {
		return err
	}

	out := cfg.OutputFile
	scanner := bufio.NewScanner(in)
	for {
		if status := g.Status(); status.IsOver() {
			fmt.Fprintf(out, "%s\n%s\n", status, output.FormatGame(cfg, g))
			return nil
		}
		if g.ToMove() != human {
			rec, err := g.PlayAgentTurn(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "engine plays %s\n", output.FormatRecord(cfg, rec))
			continue
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		switch cmd := strings.TrimSpace(scanner.Text()); cmd {
		case "":
		case "quit", "exit":
			fmt.Fprintln(out, output.FormatGame(cfg, g))
			return nil
		case "undo":
			// Take back the engine's reply as well as our own move.
			for i := 0; i < 2 && g.CanUndo(); i++ {
				if _, err := g.Undo(); err != nil {
					return err
				}
			}
		case "redo":
			if _, err := g.Redo(); err != nil {
				fmt.Fprintf(out, "%v\n", err)
			}
		case "fen":
			fmt.Fprintln(out, g.FEN())
		case "moves":
			var texts []string
			for _, m := range g.LegalMoves() {
				texts = append(texts, output.FormatMove(cfg, g.Board(), m))
			}
			fmt.Fprintln(out, strings.Join(texts, " "))
		case "help":
			fmt.Fprintln(out, "Enter a move (e4, Nf3, e7e8q) or: undo, redo, fen, moves, quit")
		default:
			if _, err := g.PlayText(cmd); err != nil {
				fmt.Fprintf(out, "%v\n", err)
			}
		}
	}
}

