package config

import (
	"github.com/lgbarn/negamax-chess/internal/errors"
	"github.com/lgbarn/negamax-chess/internal/search"
)

// MaxDepth bounds the search depth accepted from users. The search has no
// time limit, so deeper settings would not return in reasonable time.
const MaxDepth = 8

// SearchConfig holds settings for the agent's move search.
type SearchConfig struct {
	// Depth is the number of plies searched
	Depth int

	// CheckPenalty is subtracted from the score of a side in check
	CheckPenalty int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:        search.DefaultDepth,
		CheckPenalty: search.DefaultCheckPenalty,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 || s.Depth > MaxDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "search depth %d not in 1..%d", s.Depth, MaxDepth)
	}
	if s.CheckPenalty < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "check penalty %d is negative", s.CheckPenalty)
	}
	return nil
}

// Options converts the settings for search.Search.
func (s *SearchConfig) Options() search.Options {
	return search.Options{Depth: s.Depth, CheckPenalty: s.CheckPenalty}
}
