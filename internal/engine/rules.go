package engine

import (
	"github.com/lgbarn/negamax-chess/internal/chess"
)

// FiftyMoveLimit is the halfmove clock value at which either player may
// claim a draw.
const FiftyMoveLimit = 100

// IsFiftyMoveDraw returns true if 50 moves (100 half-moves) have been made
// without a pawn move or capture.
func IsFiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveLimit
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2][]chess.Piece

	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		for _, piece := range board.Pieces(colour) {
			switch piece.Kind {
			case chess.King:
				// Kings don't count for material
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			default:
				minors[colour] = append(minors[colour], piece)
			}
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white)+len(black) == 1:
		// K+B vs K or K+N vs K
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0].Kind == chess.Bishop && black[0].Kind == chess.Bishop &&
			isLightSquare(white[0].Pos) == isLightSquare(black[0].Pos)
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(pos chess.Position) bool {
	return (pos.Row+pos.Col)%2 == 1
}
