package engine

import (
	"github.com/lgbarn/negamax-chess/internal/chess"
)

// generator appends the pseudo-legal moves of the piece to moves.
type generator func(board *chess.Board, piece chess.Piece, moves []Move) []Move

// generators dispatches pseudo-legal generation by piece kind.
var generators = [chess.NumPieceKinds]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

// PseudoLegalMoves returns the candidate moves of the piece on from, before
// king-safety filtering. Squares guarded by a friendly piece are skipped.
func PseudoLegalMoves(board *chess.Board, from chess.Position) []Move {
	piece, ok := board.PieceAt(from)
	if !ok {
		return nil
	}
	return generators[piece.Kind](board, piece, nil)
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(board *chess.Board, from chess.Position) []Move {
	return filterLegal(board, PseudoLegalMoves(board, from))
}

// LegalMoves returns every legal move for colour in generation order:
// pieces a1..h8, and per piece the order of its generator.
func LegalMoves(board *chess.Board, colour chess.Colour) []Move {
	var moves []Move
	for _, piece := range board.Pieces(colour) {
		moves = generators[piece.Kind](board, piece, moves)
	}
	return filterLegal(board, moves)
}

// CanMove returns true if any piece of the colour has at least one legal move.
func CanMove(board *chess.Board, colour chess.Colour) bool {
	var buf []Move
	for _, piece := range board.Pieces(colour) {
		buf = generators[piece.Kind](board, piece, buf[:0])
		for _, m := range buf {
			if isLegal(board, m) {
				return true
			}
		}
	}
	return false
}

// filterLegal keeps the moves that do not leave the mover's king in check.
// The slice is filtered in place.
func filterLegal(board *chess.Board, moves []Move) []Move {
	legal := moves[:0]
	for _, m := range moves {
		if isLegal(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal applies m to the board and reverts it after the king check.
func isLegal(board *chess.Board, m Move) bool {
	Apply(board, m)
	ok := !board.InCheck(m.Piece.Colour)
	Revert(board, m)
	return ok
}

// addStep appends a move to an empty square or a capture of an enemy
// non-king piece. It reports whether the square was empty, so sliders know
// to keep walking.
func addStep(board *chess.Board, piece chess.Piece, to chess.Position, moves []Move) ([]Move, bool) {
	target, occupied := board.PieceAt(to)
	if !occupied {
		return append(moves, newNormal(board, piece, to)), true
	}
	if target.Colour != piece.Colour && target.Kind != chess.King {
		moves = append(moves, newCapture(board, piece, target))
	}
	// Friendly pieces are only covered.
	return moves, false
}

func knightMoves(board *chess.Board, piece chess.Piece, moves []Move) []Move {
	for _, off := range chess.KnightOffsets {
		if to, ok := piece.Pos.Offset(off[0], off[1]); ok {
			moves, _ = addStep(board, piece, to, moves)
		}
	}
	return moves
}

func slide(board *chess.Board, piece chess.Piece, dirs [][2]int, moves []Move) []Move {
	for _, dir := range dirs {
		to, ok := piece.Pos.Offset(dir[0], dir[1])
		for ok {
			var empty bool
			moves, empty = addStep(board, piece, to, moves)
			if !empty {
				break
			}
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

func bishopMoves(board *chess.Board, piece chess.Piece, moves []Move) []Move {
	return slide(board, piece, chess.DiagonalDirs[:], moves)
}

func rookMoves(board *chess.Board, piece chess.Piece, moves []Move) []Move {
	return slide(board, piece, chess.StraightDirs[:], moves)
}

func queenMoves(board *chess.Board, piece chess.Piece, moves []Move) []Move {
	moves = slide(board, piece, chess.DiagonalDirs[:], moves)
	return slide(board, piece, chess.StraightDirs[:], moves)
}

func kingMoves(board *chess.Board, piece chess.Piece, moves []Move) []Move {
	for _, off := range chess.KingOffsets {
		if to, ok := piece.Pos.Offset(off[0], off[1]); ok {
			moves, _ = addStep(board, piece, to, moves)
		}
	}
	return castlingMoves(board, piece, moves)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
