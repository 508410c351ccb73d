package engine

import (
	"github.com/lgbarn/negamax-chess/internal/chess"
)

// Apply plays m on the board and updates all board state, including the
// check flags. The move must come from the board's current legal (or, for
// probing, pseudo-legal) move list; Apply does not validate it.
func Apply(board *chess.Board, m Move) {
	switch m.Kind {
	case Normal:
		applyNormal(board, m)

	case Capture, EnPassant:
		board.DeletePiece(m.Captured.Pos)
		applyNormal(board, m)

	case Castling:
		applyCastling(board, m)

	case Promotion:
		applyNormal(board, m)
		promote(board, m)

	case CapturePromotion:
		board.DeletePiece(m.Captured.Pos)
		applyNormal(board, m)
		promote(board, m)
	}

	finishTurn(board, m)
}

// Revert undoes m, returning the board to exactly the state it had when m
// was generated.
func Revert(board *chess.Board, m Move) {
	switch m.Kind {
	case Normal, Promotion:
		board.DeletePiece(m.To)
		board.SetPiece(m.Piece)

	case Capture, EnPassant, CapturePromotion:
		board.DeletePiece(m.To)
		board.SetPiece(m.Piece)
		board.SetPiece(m.Captured)

	case Castling:
		board.DeletePiece(m.To)
		board.DeletePiece(m.RookTo)
		board.SetPiece(m.Piece)
		board.SetPiece(m.Rook)
	}

	if m.Piece.Colour == chess.Black {
		board.MoveNumber--
	}
	m.prior.restore(board)
}

// applyNormal relocates the mover and does the en passant, castling-flag
// and clock bookkeeping shared by every non-castling variant.
func applyNormal(board *chess.Board, m Move) {
	board.Relocate(m.From, m.To)
	if m.Piece.Kind.CarriesCastlingFlag() {
		board.SetCastlingPossible(m.To, false)
	}

	board.EnPassant = false
	if m.Piece.Kind == chess.Pawn && abs(m.To.Row-m.From.Row) == 2 {
		board.EnPassant = true
		board.EPTarget = chess.Position{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
	}

	if m.Piece.Kind == chess.Pawn || m.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
}

// applyCastling moves king and rook together and clears both flags.
func applyCastling(board *chess.Board, m Move) {
	board.Relocate(m.From, m.To)
	board.Relocate(m.Rook.Pos, m.RookTo)
	board.SetCastlingPossible(m.To, false)
	board.SetCastlingPossible(m.RookTo, false)

	board.EnPassant = false
	board.HalfmoveClock++
}

// promote replaces the pawn that just arrived on m.To.
func promote(board *chess.Board, m Move) {
	board.DeletePiece(m.To)
	board.SetPiece(chess.NewPiece(m.PromoteTo, m.Piece.Colour, m.To))
}

func finishTurn(board *chess.Board, m Move) {
	if m.Piece.Colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = m.Piece.Colour.Opposite()
	board.RefreshCheckFlags()
}
