package engine

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/negamax-chess/internal/chess"
)

// Perft counts the leaf positions reached by playing every legal move
// sequence of the given depth from the board.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, board.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		Apply(board, m)
		nodes += Perft(board, depth-1)
		Revert(board, m)
	}
	return nodes
}

// DivideEntry is the leaf count below one root move.
type DivideEntry struct {
	Move  string // UCI text
	Nodes uint64
}

// PerftDivide returns the leaf count below each root move, sorted by move
// text, and the total.
func PerftDivide(board *chess.Board, depth int) ([]DivideEntry, uint64) {
	if depth <= 0 {
		return nil, 1
	}
	moves := LegalMoves(board, board.ToMove)
	entries := make([]DivideEntry, len(moves))
	var total uint64
	for i, m := range moves {
		Apply(board, m)
		entries[i] = DivideEntry{Move: m.UCI(), Nodes: Perft(board, depth-1)}
		Revert(board, m)
		total += entries[i].Nodes
	}
	sortEntries(entries)
	return entries, total
}

// PerftDivideParallel is PerftDivide with every root move counted on its own
// clone of the board. The board itself is not modified. Cancelling ctx stops
// root moves that have not started yet.
func PerftDivideParallel(ctx context.Context, board *chess.Board, depth int) ([]DivideEntry, uint64, error) {
	if depth <= 0 {
		return nil, 1, nil
	}
	moves := LegalMoves(board, board.ToMove)
	entries := make([]DivideEntry, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	for i, m := range moves {
		i, m := i, m
		clone := board.Clone()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			Apply(clone, m)
			entries[i] = DivideEntry{Move: m.UCI(), Nodes: Perft(clone, depth-1)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	sortEntries(entries)
	return entries, total, nil
}

func sortEntries(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Move < entries[j].Move })
}
