// Package player provides the two sides of a game: a human whose moves are
// chosen elsewhere, and an agent that picks moves by searching.
package player

import (
	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/engine"
	"github.com/lgbarn/negamax-chess/internal/errors"
)

// Player is one side of a game.
type Player interface {
	Colour() chess.Colour
	Name() string
}

// Human applies moves chosen by a person.
type Human struct {
	colour chess.Colour
}

// NewHuman creates a human player for colour.
func NewHuman(colour chess.Colour) *Human {
	return &Human{colour: colour}
}

// Colour returns the side the player moves for.
func (h *Human) Colour() chess.Colour { return h.colour }

// Name returns a display name.
func (h *Human) Name() string { return "human (" + h.colour.String() + ")" }

// MakeMove applies m if it is legal on board right now and returns the move
// as applied. Moves are matched by squares and promotion, so a Move kept
// from an earlier position is replaced by its current counterpart.
func (h *Human) MakeMove(board *chess.Board, m engine.Move) (engine.Move, error) {
	if board.ToMove != h.colour {
		return engine.Move{}, &errors.MoveError{
			Err:      errors.Wrapf(errors.ErrIllegalMove, "%s to move", board.ToMove),
			MoveText: m.UCI(),
			FEN:      engine.BoardToFEN(board),
		}
	}
	for _, legal := range engine.LegalMoves(board, h.colour) {
		if legal.SameAs(m) {
			engine.Apply(board, legal)
			return legal, nil
		}
	}
	return engine.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: m.UCI(), FEN: engine.BoardToFEN(board)}
}

// MakeMoveText resolves UCI or SAN text and applies the move.
func (h *Human) MakeMoveText(board *chess.Board, text string) (engine.Move, error) {
	m, err := engine.FindMove(board, text)
	if err != nil {
		return engine.Move{}, err
	}
	return h.MakeMove(board, m)
}
