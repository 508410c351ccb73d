package search

import (
	"github.com/lgbarn/negamax-chess/internal/chess"
)

// PieceValue is the material value of each kind in centipawns.
var PieceValue = [chess.NumPieceKinds]int{
	chess.Pawn:   100,
	chess.Knight: 300,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// Piece-square tables from White's point of view, index 0 = a1, 63 = h8.

var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddlegameTable = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingEndgameTable = [64]int{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

var pieceTables = [chess.NumPieceKinds]*[64]int{
	chess.Pawn:   &pawnTable,
	chess.Knight: &knightTable,
	chess.Bishop: &bishopTable,
	chess.Rook:   &rookTable,
	chess.Queen:  &queenTable,
	chess.King:   &kingMiddlegameTable,
}

// IsEndgame reports whether neither side has a queen left.
func IsEndgame(board *chess.Board) bool {
	return len(board.Queens(chess.White)) == 0 && len(board.Queens(chess.Black)) == 0
}

// SquareBonus returns the piece-square bonus of piece. Black reads the
// tables mirrored vertically.
func SquareBonus(piece chess.Piece, endgame bool) int {
	table := pieceTables[piece.Kind]
	if piece.Kind == chess.King && endgame {
		table = &kingEndgameTable
	}
	if table == nil {
		return 0
	}
	row := piece.Pos.Row
	if piece.Colour == chess.Black {
		row = chess.BoardSize - 1 - row
	}
	return table[row*chess.BoardSize+piece.Pos.Col]
}

// sideScore is the material and position score of one colour, less the
// check penalty if its king is attacked.
func sideScore(board *chess.Board, colour chess.Colour, endgame bool, checkPenalty int) int {
	score := 0
	for _, piece := range board.Pieces(colour) {
		score += PieceValue[piece.Kind] + SquareBonus(piece, endgame)
	}
	if board.InCheck(colour) {
		score -= checkPenalty
	}
	return score
}

// Evaluate returns the static score of the board from colour's point of
// view: its own material and position minus the opponent's.
func Evaluate(board *chess.Board, colour chess.Colour, checkPenalty int) int {
	endgame := IsEndgame(board)
	return sideScore(board, colour, endgame, checkPenalty) -
		sideScore(board, colour.Opposite(), endgame, checkPenalty)
}
