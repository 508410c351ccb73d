// negamax-chess is a chess engine tool: it checks move generation with
// perft, finds best moves, and plays games against itself or a person.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/config"
	"github.com/lgbarn/negamax-chess/internal/engine"
	"github.com/lgbarn/negamax-chess/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("negamax-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	setupLogFile(cfg)
	setupOutputFile(cfg)
	if err := applyFlags(cfg); err != nil {
		fatalf("Error in options: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fatalf("Error: %v", err)
	}
}

// run dispatches to the selected mode.
func run(ctx context.Context, cfg *config.Config) error {
	start := engine.InitialFEN
	if *fenString != "" {
		start = *fenString
	}
	g, err := game.NewFromFEN(start, cfg)
	if err != nil {
		return err
	}
	if *moveList != "" {
		for _, text := range strings.Fields(*moveList) {
			if _, err := g.PlayText(text); err != nil {
				return err
			}
		}
	}

	switch {
	case *perftDepth > 0:
		return runPerft(ctx, cfg.OutputFile, g.Board(), *perftDepth, *divide, *parallel)
	case *best:
		boards := []*chess.Board{g.Board()}
		for _, filename := range flag.Args() {
			fens, err := loadFENFile(filename)
			if err != nil {
				return err
			}
			for _, fen := range fens {
				board, err := engine.NewBoardFromFEN(fen)
				if err != nil {
					return fmt.Errorf("%s: %w", filename, err)
				}
				boards = append(boards, board)
			}
		}
		return runBest(ctx, cfg, boards, *workers)
	case *selfPlay > 0:
		return runSelfPlay(ctx, cfg, g, *selfPlay)
	case *play != "":
		var human chess.Colour
		switch *play {
		case "white":
			human = chess.White
		case "black":
			human = chess.Black
		default:
			return fmt.Errorf("-play wants white or black, got %q", *play)
		}
		return runInteractive(ctx, os.Stdin, cfg, g, human)
	default:
		fmt.Fprintln(cfg.OutputFile, g.FEN())
		fmt.Fprintln(cfg.OutputFile, g.Status())
		return nil
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fatalf("Error opening log file %s: %v", *logFile, err)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fatalf("Error creating output file %s: %v", *outputFile, err)
	}
	cfg.OutputFile = file
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: negamax-chess [options] [fen-files...]\n\n")
	fmt.Fprintf(os.Stderr, "A negamax chess engine.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  negamax-chess -perft 5\n")
	fmt.Fprintf(os.Stderr, "  negamax-chess -perft 3 -divide -parallel -fen '<fen>'\n")
	fmt.Fprintf(os.Stderr, "  negamax-chess -best -depth 4 -workers 4 positions.txt\n")
	fmt.Fprintf(os.Stderr, "  negamax-chess -selfplay 40 -showfen\n")
	fmt.Fprintf(os.Stderr, "  negamax-chess -play white\n")
}
