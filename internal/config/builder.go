package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth in plies.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithCheckPenalty sets the evaluation penalty for being in check.
func (b *ConfigBuilder) WithCheckPenalty(penalty int) *ConfigBuilder {
	b.cfg.Search.CheckPenalty = penalty
	return b
}

// WithVerbosity sets the logging verbosity.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithWorkerBuffer sets the queue length of agent search workers.
func (b *ConfigBuilder) WithWorkerBuffer(size int) *ConfigBuilder {
	b.cfg.WorkerBuffer = size
	return b
}

// WithNotation sets the move notation used for output.
func (b *ConfigBuilder) WithNotation(n MoveNotation) *ConfigBuilder {
	b.cfg.Output.Notation = n
	return b
}

// WithMaxLineLength sets the maximum movetext line length.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithDrawRules enables or disables the automatic draw rules.
func (b *ConfigBuilder) WithDrawRules(fifty, repetition, material bool) *ConfigBuilder {
	b.cfg.Rules.FiftyMoveRule = fifty
	b.cfg.Rules.ThreefoldRepetition = repetition
	b.cfg.Rules.InsufficientMaterial = material
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
