package engine

import "github.com/lgbarn/negamax-chess/internal/chess"

// InCheck returns the cached check flag of the colour's king.
func InCheck(board *chess.Board, colour chess.Colour) bool {
	return board.InCheck(colour)
}

// InCheckmate returns true if the colour is in check, its king has no legal
// move and no other piece can move either.
func InCheckmate(board *chess.Board, colour chess.Colour) bool {
	if !board.InCheck(colour) {
		return false
	}
	return !kingCanMove(board, colour) && !CanMove(board, colour)
}

// InStalemate returns true if the side to move is not in check but has no
// legal move.
func InStalemate(board *chess.Board) bool {
	colour := board.ToMove
	if board.InCheck(colour) {
		return false
	}
	return !kingCanMove(board, colour) && !CanMove(board, colour)
}

// kingCanMove checks the king first since it is the cheapest refutation of
// mate and stalemate.
func kingCanMove(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.King(colour)
	if !ok {
		return false
	}
	return len(LegalMovesFrom(board, king.Pos)) > 0
}
