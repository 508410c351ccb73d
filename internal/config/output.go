package config

import "github.com/lgbarn/negamax-chess/internal/errors"

// MoveNotation selects how moves are written.
type MoveNotation int

const (
	SAN MoveNotation = iota // Standard Algebraic Notation (Nf3, exd6+)
	UCI                     // Long algebraic as used by UCI (g1f3, e5d6)
)

func (n MoveNotation) String() string {
	switch n {
	case SAN:
		return "san"
	case UCI:
		return "uci"
	default:
		return "unknown"
	}
}

// ParseMoveNotation parses "san" or "uci".
func ParseMoveNotation(s string) (MoveNotation, error) {
	switch s {
	case "san":
		return SAN, nil
	case "uci":
		return UCI, nil
	}
	return SAN, errors.Wrapf(errors.ErrInvalidConfig, "unknown notation %q", s)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Notation is used for moves in logs and on the command line
	Notation MoveNotation

	// MaxLineLength is the maximum line length of game movetext (0 = no limit)
	MaxLineLength int

	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowFEN prints the position after every move of a self-play game
	ShowFEN bool

	// ShowPV prints the principal variation with each search result
	ShowPV bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{Notation: SAN, MaxLineLength: 80}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Notation != SAN && o.Notation != UCI {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown notation %d", int(o.Notation))
	}
	if o.MaxLineLength < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "line length %d is negative", o.MaxLineLength)
	}
	return nil
}
