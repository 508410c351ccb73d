// Package search picks moves with a fixed-depth negamax search with
// alpha-beta pruning over the live board.
package search

import (
	"context"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/engine"
	"github.com/lgbarn/negamax-chess/internal/errors"
	"github.com/lgbarn/negamax-chess/internal/hashing"
)

// Default search settings.
const (
	DefaultDepth        = 3
	DefaultCheckPenalty = 50
)

// infinity bounds every reachable score.
const infinity = 1 << 30

// Options controls one search.
type Options struct {
	Depth        int // Plies to search; values below 1 are treated as 1
	CheckPenalty int // Centipawns subtracted from a side whose king is in check
}

// DefaultOptions returns the default search settings.
func DefaultOptions() Options {
	return Options{Depth: DefaultDepth, CheckPenalty: DefaultCheckPenalty}
}

// Result is the outcome of one search.
type Result struct {
	Value int         // Score of Move from the mover's point of view
	Move  engine.Move // Best root move; only valid if Found
	Found bool

	// PV is the line the search expects, starting with Move.
	PV []engine.Move

	Nodes          uint64 // Positions entered below the root
	Leaves         uint64 // Static evaluations
	Cutoffs        uint64 // Beta cutoffs
	Transpositions uint64 // Positions reached again by another move order
}

// searcher holds the state of one Search call.
type searcher struct {
	board   *chess.Board
	opts    Options
	visited *hashing.VisitedSet
	result  *Result
}

// Search runs negamax from the side to move and returns the best move. The
// board is mutated while the search runs and restored before it returns;
// nothing else may touch it meanwhile.
//
// Cancelling ctx stops the search between root moves. The best move found
// so far is returned together with ctx's error.
func Search(ctx context.Context, board *chess.Board, opts Options) (Result, error) {
	if opts.Depth < 1 {
		opts.Depth = 1
	}
	result := Result{}
	s := &searcher{
		board:   board,
		opts:    opts,
		visited: hashing.NewVisitedSet(),
		result:  &result,
	}

	colour := board.ToMove
	moves := engine.LegalMoves(board, colour)
	if len(moves) == 0 {
		result.Value = Evaluate(board, colour, opts.CheckPenalty)
		return result, errors.Wrapf(errors.ErrNoLegalMoves, "%s to move", colour)
	}

	alpha, beta := -infinity, infinity
	for _, m := range moves {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		value, line := s.child(m, opts.Depth-1, -beta, -alpha)
		if !result.Found || value > result.Value {
			result.Found = true
			result.Value = value
			result.Move = m
			result.PV = append([]engine.Move{m}, line...)
		}
		if value > alpha {
			alpha = value
		}
	}
	return result, nil
}

// child applies m, searches the resulting position and reverts m. It
// returns the negated value from the mover's point of view.
func (s *searcher) child(m engine.Move, depth, alpha, beta int) (int, []engine.Move) {
	engine.Apply(s.board, m)
	s.result.Nodes++
	if s.visited.CheckAndAdd(s.board) {
		s.result.Transpositions++
	}
	value, line := s.negamax(depth, alpha, beta)
	engine.Revert(s.board, m)
	return -value, line
}

// negamax scores the board for the side to move. A position with no legal
// moves is a checkmate or stalemate and is scored statically.
func (s *searcher) negamax(depth, alpha, beta int) (int, []engine.Move) {
	colour := s.board.ToMove
	if depth == 0 {
		return s.evaluate(colour), nil
	}
	moves := engine.LegalMoves(s.board, colour)
	if len(moves) == 0 {
		return s.evaluate(colour), nil
	}

	best := -infinity
	var bestLine []engine.Move
	for _, m := range moves {
		value, line := s.child(m, depth-1, -beta, -alpha)
		if value > best {
			best = value
			bestLine = append([]engine.Move{m}, line...)
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.result.Cutoffs++
			break
		}
	}
	return best, bestLine
}

func (s *searcher) evaluate(colour chess.Colour) int {
	s.result.Leaves++
	return Evaluate(s.board, colour, s.opts.CheckPenalty)
}
