// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the current legal move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPosition indicates a coordinate outside the 8x8 board.
	ErrInvalidPosition = errors.New("invalid board position")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSearchInProgress indicates a search is already running on the board.
	ErrSearchInProgress = errors.New("search already in progress")

	// ErrGameOver indicates an operation that requires the game to be ongoing.
	ErrGameOver = errors.New("game is over")

	// ErrNoLegalMoves indicates the side to move has no legal moves.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrNothingToUndo indicates the move history is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates there is no undone move to replay.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrPoolStopped indicates a job was dropped because its worker pool stopped.
	ErrPoolStopped = errors.New("worker pool stopped")
)

// FENRule names the FEN validation rule that a string violated.
type FENRule int

const (
	RuleFieldCount FENRule = iota
	RuleRankSeparators
	RuleRankWidth
	RulePieceLetter
	RuleKingCount
	RulePawnCount
	RuleSideToMove
	RuleCastling
	RuleEnPassant
	RuleClock
)

var fenRuleNames = []string{
	"field count",
	"rank separators",
	"rank width",
	"piece letter",
	"king count",
	"pawn count",
	"side to move",
	"castling availability",
	"en passant square",
	"move clock",
}

// String returns a short description of the rule.
func (r FENRule) String() string {
	if int(r) >= 0 && int(r) < len(fenRuleNames) {
		return fenRuleNames[r]
	}
	return "unknown rule"
}

// FENError reports which FEN rule was violated and where. Several layout
// violations found in one parse are carried together in Err.
type FENError struct {
	Rule  FENRule // The first rule violated
	Field int     // 1-based FEN field index (0 if not applicable)
	Got   string  // The offending text
	Err   error   // Underlying error(s); always wraps ErrInvalidFEN
}

// Error returns a formatted error message including the violated rule.
func (e *FENError) Error() string {
	var parts []string
	if e.Field > 0 {
		parts = append(parts, fmt.Sprintf("field %d", e.Field))
	}
	parts = append(parts, e.Rule.String())
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("got %q", e.Got))
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the FENError wrapper.
func (e *FENError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with move context.
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move text that caused the error (if applicable)
	FEN      string // Position the move was tried in (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.WithMessage(err, context)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return pkgerrors.WithMessagef(err, format, args...)
}
