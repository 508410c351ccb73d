package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/config"
	"github.com/lgbarn/negamax-chess/internal/engine"
	"github.com/lgbarn/negamax-chess/internal/game"
	"github.com/lgbarn/negamax-chess/internal/search"
)

// SearchReport is one finished search. Board is the searched position; it
// must be in the state the search started from.
type SearchReport struct {
	Board   *chess.Board
	Result  search.Result
	Elapsed time.Duration
	Err     error
}

// ResultWriter is the interface for writing games and search results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteGame writes a finished or abandoned game.
	WriteGame(g *game.Game) error

	// WriteSearch writes one search result.
	WriteSearch(r SearchReport) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output.
func NewWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes plain text, one game or position at a time.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteGame writes the movetext and result, wrapped at the configured line
// length.
func (tw *TextWriter) WriteGame(g *game.Game) error {
	_, err := fmt.Fprintln(tw.w, wrapLine(FormatGame(tw.cfg, g), tw.cfg.Output.MaxLineLength))
	return err
}

// WriteSearch writes the position followed by the best move and, if
// configured, the principal variation.
func (tw *TextWriter) WriteSearch(r SearchReport) error {
	fen := engine.BoardToFEN(r.Board)
	if !r.Result.Found {
		_, err := fmt.Fprintf(tw.w, "%s\n  error: %v\n", fen, r.Err)
		return err
	}
	if _, err := fmt.Fprintf(tw.w, "%s\n  bestmove %s value %d nodes %d time %v\n", fen,
		FormatMove(tw.cfg, r.Board, r.Result.Move), r.Result.Value, r.Result.Nodes,
		r.Elapsed.Round(time.Millisecond)); err != nil {
		return err
	}
	if tw.cfg.Output.ShowPV {
		if _, err := fmt.Fprintf(tw.w, "  pv %s\n", FormatLine(tw.cfg, r.Board, r.Result.PV)); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes JSON. It buffers games and searches and writes them as
// one JSON document on Flush or Close.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	output JSONOutput
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// WriteGame converts and buffers a game. The game may change afterwards.
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	jw.output.Games = append(jw.output.Games, GameToJSON(g, jw.cfg.Output.ShowFEN))
	return nil
}

// WriteSearch converts and buffers a search result.
func (jw *JSONWriter) WriteSearch(r SearchReport) error {
	jw.output.Searches = append(jw.output.Searches, SearchToJSON(r))
	return nil
}

// Flush writes everything buffered as one JSON document.
func (jw *JSONWriter) Flush() error {
	if len(jw.output.Games) == 0 && len(jw.output.Searches) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&jw.output)

	// Clear buffer after writing
	jw.output = JSONOutput{}

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
