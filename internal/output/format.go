// Package output writes games and search results as text or JSON.
package output

import (
	"strings"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/config"
	"github.com/lgbarn/negamax-chess/internal/engine"
	"github.com/lgbarn/negamax-chess/internal/game"
)

// FormatMove writes m, a legal move on board, in the configured notation.
func FormatMove(cfg *config.Config, board *chess.Board, m engine.Move) string {
	if cfg.Output.Notation == config.UCI {
		return m.UCI()
	}
	return engine.SAN(board, m)
}

// FormatRecord writes a played move in the configured notation.
func FormatRecord(cfg *config.Config, rec game.Record) string {
	if cfg.Output.Notation == config.UCI {
		return rec.Move.UCI()
	}
	return rec.SAN
}

// FormatLine writes a line of moves played from board. The board is not
// changed.
func FormatLine(cfg *config.Config, board *chess.Board, line []engine.Move) string {
	b := board.Clone()
	texts := make([]string, 0, len(line))
	for _, m := range line {
		texts = append(texts, FormatMove(cfg, b, m))
		engine.Apply(b, m)
	}
	return strings.Join(texts, " ")
}

// FormatGame writes the moves of g followed by its result, e.g.
// "1. e4 e5 2. Nf3 *".
func FormatGame(cfg *config.Config, g *game.Game) string {
	text := g.MoveText()
	if cfg.Output.Notation == config.UCI {
		var uci []string
		for _, rec := range g.History() {
			uci = append(uci, rec.Move.UCI())
		}
		text = strings.Join(uci, " ")
	}
	if text == "" {
		return g.Result()
	}
	return text + " " + g.Result()
}

// wrapLine breaks text at spaces so no line exceeds maxLen, unless a single
// word is longer. A maxLen of 0 disables wrapping.
func wrapLine(text string, maxLen int) string {
	if maxLen <= 0 || len(text) <= maxLen {
		return text
	}
	var sb strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		switch {
		case lineLen == 0:
		case lineLen+1+len(word) > maxLen:
			sb.WriteByte('\n')
			lineLen = 0
		default:
			sb.WriteByte(' ')
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
