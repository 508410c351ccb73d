package engine

import (
	"strings"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/errors"
)

// SAN returns m in standard algebraic notation for the given board, with
// origin disambiguation and a check or mate suffix. The board must be in
// the state m was generated from; it is restored before returning.
func SAN(board *chess.Board, m Move) string {
	text := sanBody(board, m)

	Apply(board, m)
	opponent := m.Piece.Colour.Opposite()
	switch {
	case board.InCheck(opponent) && !CanMove(board, opponent):
		text += "#"
	case board.InCheck(opponent):
		text += "+"
	}
	Revert(board, m)

	return text
}

// sanBody is the SAN text without a check suffix.
func sanBody(board *chess.Board, m Move) string {
	if m.Kind == Castling || m.Piece.Kind == chess.Pawn {
		return m.String()
	}

	var sb strings.Builder
	sb.WriteByte(m.Piece.Kind.Letter())
	sb.WriteString(disambiguation(board, m))
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

// disambiguation returns the origin file, rank, or square needed to tell m
// apart from other legal moves of the same kind to the same square.
func disambiguation(board *chess.Board, m Move) string {
	var rivals []chess.Position
	for _, piece := range board.PiecesOfKind(m.Piece.Colour, m.Piece.Kind) {
		if piece.Pos == m.From {
			continue
		}
		for _, other := range LegalMovesFrom(board, piece.Pos) {
			if other.To == m.To {
				rivals = append(rivals, piece.Pos)
				break
			}
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, pos := range rivals {
		if pos.Col == m.From.Col {
			sameFile = true
		}
		if pos.Row == m.From.Row {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(m.From.File())
	case !sameRank:
		return string(m.From.Rank())
	default:
		return m.From.String()
	}
}

// FindMove resolves UCI ("e2e4", "e7e8q") or SAN ("Nf3", "exd5", "O-O",
// "e8=Q+") text to a legal move of the side to move. SAN that needs a
// disambiguating file or rank is only accepted with it.
func FindMove(board *chess.Board, text string) (Move, error) {
	want := normaliseMoveText(text)
	if want == "" {
		return Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text, FEN: BoardToFEN(board)}
	}

	for _, m := range LegalMoves(board, board.ToMove) {
		if m.UCI() == strings.ToLower(want) {
			return m, nil
		}
		if normaliseMoveText(sanBody(board, m)) == want {
			return m, nil
		}
	}
	return Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text, FEN: BoardToFEN(board)}
}

// normaliseMoveText strips annotations and the promotion '=' and spells
// castling with letter O.
func normaliseMoveText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, "+#!?")
	text = strings.ReplaceAll(text, "0", "O")
	return strings.ReplaceAll(text, "=", "")
}
