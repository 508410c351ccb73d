// Package config provides configuration for the engine, its players and the
// command line tool.
package config

import (
	"io"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/negamax-chess/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Search SearchConfig
	Rules  RulesConfig
	Output OutputConfig

	Verbosity int // 0=nothing, 1=search summaries, 2=running commentary

	// WorkerBuffer is the queue length of an agent's search worker.
	WorkerBuffer int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:       *NewSearchConfig(),
		Rules:        *NewRulesConfig(),
		Output:       *NewOutputConfig(),
		Verbosity:    1,
		WorkerBuffer: 1,
		OutputFile:   os.Stdout,
		LogFile:      os.Stderr,
	}
}

// Validate reports every invalid setting at once. The error wraps
// ErrInvalidConfig.
func (c *Config) Validate() error {
	var merr *multierror.Error
	if err := c.Search.Validate(); err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := c.Output.Validate(); err != nil {
		merr = multierror.Append(merr, err)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		merr = multierror.Append(merr, errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d not in 0..2", c.Verbosity))
	}
	if c.WorkerBuffer < 1 {
		merr = multierror.Append(merr, errors.Wrapf(errors.ErrInvalidConfig, "worker buffer %d below 1", c.WorkerBuffer))
	}
	return merr.ErrorOrNil()
}

// SetOutput sets the stream results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logger returns a logger writing to LogFile with the given prefix. With
// verbosity 0 or no log file, everything is discarded.
func (c *Config) Logger(prefix string) *log.Logger {
	w := c.LogFile
	if w == nil || c.Verbosity == 0 {
		w = io.Discard
	}
	return log.New(w, prefix+": ", log.Ltime|log.Lmicroseconds)
}
