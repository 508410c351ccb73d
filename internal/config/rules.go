package config

// RulesConfig selects which draw rules end a game automatically.
// Checkmate and stalemate always end it.
type RulesConfig struct {
	// FiftyMoveRule draws after 50 moves without a capture or pawn move
	FiftyMoveRule bool

	// ThreefoldRepetition draws when a position occurs for the third time
	ThreefoldRepetition bool

	// InsufficientMaterial draws when neither side can mate
	InsufficientMaterial bool
}

// NewRulesConfig creates a RulesConfig with every draw rule enabled.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		FiftyMoveRule:        true,
		ThreefoldRepetition:  true,
		InsufficientMaterial: true,
	}
}
