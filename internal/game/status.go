package game

import "github.com/lgbarn/negamax-chess/internal/chess"

// Status is the state of a game.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

var statusNames = [...]string{
	Ongoing:              "ongoing",
	Checkmate:            "checkmate",
	Stalemate:            "stalemate",
	InsufficientMaterial: "draw by insufficient material",
	FiftyMoveRule:        "draw by the fifty-move rule",
	ThreefoldRepetition:  "draw by threefold repetition",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// IsOver reports whether no more moves may be played.
func (s Status) IsOver() bool {
	return s != Ongoing
}

// Result returns the PGN result for a game that ended with s while
// toMove was the side to move.
func (s Status) Result(toMove chess.Colour) string {
	switch s {
	case Ongoing:
		return "*"
	case Checkmate:
		if toMove == chess.White {
			return "0-1"
		}
		return "1-0"
	default:
		return "1/2-1/2"
	}
}
