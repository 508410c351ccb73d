// Package hashing provides position bookkeeping keyed by Zobrist hash.
package hashing

import (
	"github.com/lgbarn/negamax-chess/internal/chess"
)

// VisitedSet tracks the positions seen during one search. It only counts
// how often a position is reached again; it never stores a value.
type VisitedSet struct {
	// seen stores the hash codes reached so far
	seen map[uint64]struct{}
	// duplicateCount tracks how many additions were already present
	duplicateCount int
}

// NewVisitedSet creates an empty set.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{seen: make(map[uint64]struct{})}
}

// CheckAndAdd records the board's position and returns true if it had
// already been seen.
func (v *VisitedSet) CheckAndAdd(board *chess.Board) bool {
	return v.CheckAndAddHash(board.PositionHash())
}

// CheckAndAddHash is CheckAndAdd for a precomputed hash.
func (v *VisitedSet) CheckAndAddHash(hash uint64) bool {
	if _, ok := v.seen[hash]; ok {
		v.duplicateCount++
		return true
	}
	v.seen[hash] = struct{}{}
	return false
}

// DuplicateCount returns the number of repeated positions detected.
func (v *VisitedSet) DuplicateCount() int {
	return v.duplicateCount
}

// UniqueCount returns the number of distinct positions seen.
func (v *VisitedSet) UniqueCount() int {
	return len(v.seen)
}

// Reset clears the set.
func (v *VisitedSet) Reset() {
	v.seen = make(map[uint64]struct{})
	v.duplicateCount = 0
}

// RepetitionCounter counts how often each position occurred in a game, so
// moves can be taken back and threefold repetition detected.
type RepetitionCounter struct {
	counts map[uint64]int
}

// NewRepetitionCounter creates an empty counter.
func NewRepetitionCounter() *RepetitionCounter {
	return &RepetitionCounter{counts: make(map[uint64]int)}
}

// Increment records one more occurrence of the board's position and returns
// the new count.
func (r *RepetitionCounter) Increment(board *chess.Board) int {
	hash := board.PositionHash()
	r.counts[hash]++
	return r.counts[hash]
}

// Decrement removes one occurrence of the board's position.
func (r *RepetitionCounter) Decrement(board *chess.Board) {
	hash := board.PositionHash()
	if r.counts[hash] <= 1 {
		delete(r.counts, hash)
		return
	}
	r.counts[hash]--
}

// Count returns how often the board's position has occurred.
func (r *RepetitionCounter) Count(board *chess.Board) int {
	return r.counts[board.PositionHash()]
}

// Reset forgets every position.
func (r *RepetitionCounter) Reset() {
	r.counts = make(map[uint64]int)
}
