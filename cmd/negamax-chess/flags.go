// flags.go - Command-line flag definitions and configuration
package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/negamax-chess/internal/config"
)

var (
	// Position
	fenString = flag.String("fen", "", "Start from this FEN position (default: initial position)")
	moveList  = flag.String("moves", "", "Play these moves (SAN or UCI, space separated) before anything else")

	// Modes
	perftDepth = flag.Int("perft", 0, "Count leaf positions to depth N")
	divide     = flag.Bool("divide", false, "With -perft, print counts per root move")
	parallel   = flag.Bool("parallel", false, "With -perft -divide, search root moves in parallel")
	best       = flag.Bool("best", false, "Print the best move for each position (-fen and FEN files)")
	workers    = flag.Int("workers", 1, "With -best, number of positions searched at once")
	selfPlay   = flag.Int("selfplay", 0, "Let the engine play itself for up to N plies")
	play       = flag.String("play", "", "Play against the engine on stdin as white or black")

	// Search
	depth        = flag.Int("depth", 3, "Search depth in plies")
	checkPenalty = flag.Int("checkpenalty", 50, "Evaluation penalty for a king in check")
	noDrawRules  = flag.Bool("nodraws", false, "Don't end games by the fifty-move, repetition or material rules")

	// Output
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	notation   = flag.String("W", "san", "Move notation: san, uci")
	lineLength = flag.Int("w", 80, "Maximum movetext line length (0 = no limit)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	showFEN    = flag.Bool("showfen", false, "Print the FEN after every move of a game")
	showPV     = flag.Bool("pv", false, "Print the principal variation with -best")

	// Logging
	logFile   = flag.String("l", "", "Write log to file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 search summaries, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode, same as -v 0")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	b := config.NewConfigBuilder().
		WithDepth(*depth).
		WithCheckPenalty(*checkPenalty).
		WithVerbosity(*verbosity).
		WithWorkerBuffer(1)
	if *quiet {
		b.WithVerbosity(0)
	}
	if *noDrawRules {
		b.WithDrawRules(false, false, false)
	}
	n, err := config.ParseMoveNotation(*notation)
	if err != nil {
		return err
	}
	b.WithNotation(n).
		WithMaxLineLength(*lineLength).
		WithJSONOutput(*jsonOutput)

	built := b.Build()
	built.Output.ShowFEN = *showFEN
	built.Output.ShowPV = *showPV
	built.OutputFile = cfg.OutputFile
	built.LogFile = cfg.LogFile
	*cfg = *built
	return cfg.Validate()
}

// loadFENFile reads one FEN per line. Empty lines and lines starting with
// '#' are skipped.
func loadFENFile(filename string) ([]string, error) {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readFENs(file)
}

func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}
