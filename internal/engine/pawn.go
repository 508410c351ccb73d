package engine

import "github.com/lgbarn/negamax-chess/internal/chess"

// pawnMoves generates single and double steps, diagonal captures and en
// passant. Any move landing on the last rank becomes a queen promotion.
func pawnMoves(board *chess.Board, pawn chess.Piece, moves []Move) []Move {
	colour := pawn.Colour
	dir := chess.ColourOffset(colour)
	lastRow := chess.PromotionRow(colour)

	// Forward steps
	if one, ok := pawn.Pos.Offset(dir, 0); ok && !board.IsOccupied(one) {
		if one.Row == lastRow {
			moves = append(moves, newPromotion(board, pawn, one))
		} else {
			moves = append(moves, newNormal(board, pawn, one))
		}
		if pawn.Pos.Row == chess.PawnStartRow(colour) {
			if two, ok := one.Offset(dir, 0); ok && !board.IsOccupied(two) {
				moves = append(moves, newNormal(board, pawn, two))
			}
		}
	}

	// Captures
	for _, dc := range chess.PawnCaptureCols {
		to, ok := pawn.Pos.Offset(dir, dc)
		if !ok {
			continue
		}
		if target, occupied := board.PieceAt(to); occupied {
			if target.Colour == colour || target.Kind == chess.King {
				continue
			}
			if to.Row == lastRow {
				moves = append(moves, newCapturePromotion(board, pawn, target))
			} else {
				moves = append(moves, newCapture(board, pawn, target))
			}
			continue
		}
		if m, ok := enPassantMove(board, pawn, to); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// enPassantMove builds the en passant capture onto to, if the board's target
// is to and an enemy pawn really stands beside the mover.
func enPassantMove(board *chess.Board, pawn chess.Piece, to chess.Position) (Move, bool) {
	if !board.EnPassant || board.EPTarget != to {
		return Move{}, false
	}
	victim, ok := board.PieceAt(chess.Position{Row: pawn.Pos.Row, Col: to.Col})
	if !ok || !victim.Is(chess.Pawn, pawn.Colour.Opposite()) {
		return Move{}, false
	}
	return newEnPassant(board, pawn, to, victim), true
}
