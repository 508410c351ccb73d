package engine

import "github.com/lgbarn/negamax-chess/internal/chess"

// castlingMoves appends castling candidates for the king. A candidate needs
// an unmoved king that is not in check, an unmoved rook of the same colour
// on the same row, empty squares between them, and a transit and
// destination square that no enemy piece attacks.
func castlingMoves(board *chess.Board, king chess.Piece, moves []Move) []Move {
	if !king.CastlingPossible {
		return moves
	}
	enemy := king.Colour.Opposite()
	if !isSafePosition(board, king.Pos, enemy) {
		return moves
	}

	for _, rook := range board.Rooks(king.Colour) {
		if !rook.CastlingPossible || rook.Pos.Row != king.Pos.Row {
			continue
		}
		if !board.EmptyBetween(king.Pos, rook.Pos) {
			continue
		}

		dir := sign(rook.Pos.Col - king.Pos.Col)
		transit, ok1 := king.Pos.Offset(0, dir)
		dest, ok2 := king.Pos.Offset(0, 2*dir)
		if !ok1 || !ok2 {
			continue
		}
		if !isSafePosition(board, transit, enemy) || !isSafePosition(board, dest, enemy) {
			continue
		}
		moves = append(moves, newCastling(board, king, dest, rook, transit))
	}
	return moves
}

// isSafePosition reports whether no piece of enemy attacks pos.
func isSafePosition(board *chess.Board, pos chess.Position, enemy chess.Colour) bool {
	return !board.IsSquareAttacked(pos, enemy)
}
