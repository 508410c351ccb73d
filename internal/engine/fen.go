package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Castling letters in FEN order, with the rook square each one names.
var castlingLetters = []struct {
	letter byte
	colour chess.Colour
	rook   chess.Position
}{
	{'K', chess.White, chess.Position{Row: 0, Col: 7}},
	{'Q', chess.White, chess.Position{Row: 0, Col: 0}},
	{'k', chess.Black, chess.Position{Row: 7, Col: 7}},
	{'q', chess.Black, chess.Position{Row: 7, Col: 0}},
}

// kingHome is the e-file square a castling king must stand on.
func kingHome(colour chess.Colour) chess.Position {
	return chess.Position{Row: chess.HomeRow(colour), Col: 4}
}

// NewBoardFromFEN creates a board from a FEN string. The halfmove clock and
// fullmove number may be omitted; they default to 0 and 1.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fenError(errors.RuleFieldCount, 0, fen, "want 4 to 6 fields, got %d", len(parts))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4:]); err != nil {
		return nil, err
	}

	board.RefreshCheckFlags()
	return board, nil
}

// LoadFEN replaces the contents of board with the position in fen. On error
// the board is left untouched.
func LoadFEN(board *chess.Board, fen string) error {
	parsed, err := NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	*board = *parsed
	return nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, err := NewBoardFromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return board
}

func fenError(rule errors.FENRule, field int, got string, format string, args ...interface{}) error {
	return &errors.FENError{
		Rule:  rule,
		Field: field,
		Got:   got,
		Err:   errors.Wrapf(errors.ErrInvalidFEN, format, args...),
	}
}

// parsePiecePositions parses the piece placement field. Every layout
// violation is collected before giving up.
func parsePiecePositions(board *chess.Board, layout string) error {
	var (
		merr      *multierror.Error
		firstRule errors.FENRule
	)
	fail := func(rule errors.FENRule, format string, args ...interface{}) {
		if merr == nil {
			firstRule = rule
		}
		merr = multierror.Append(merr, errors.Wrapf(errors.ErrInvalidFEN, format, args...))
	}

	ranks := strings.Split(layout, "/")
	if len(ranks) != chess.BoardSize {
		fail(errors.RuleRankSeparators, "want %d rank separators, got %d", chess.BoardSize-1, len(ranks)-1)
	}

	var kings, pawns [2]int
	for i, rank := range ranks {
		if i >= chess.BoardSize {
			break
		}
		row := chess.BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '9' {
				col += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				fail(errors.RulePieceLetter, "rank %d: unknown piece letter %q", row+1, c)
				continue
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			switch kind {
			case chess.King:
				kings[colour]++
			case chess.Pawn:
				pawns[colour]++
			}
			if col < chess.BoardSize {
				board.SetPiece(chess.NewPiece(kind, colour, chess.Position{Row: row, Col: col}))
			}
			col++
		}
		if col != chess.BoardSize {
			fail(errors.RuleRankWidth, "rank %d: want %d squares, got %d", row+1, chess.BoardSize, col)
		}
	}

	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			fail(errors.RuleKingCount, "want one %s king, got %d", colour, kings[colour])
		}
		if pawns[colour] > 8 {
			fail(errors.RulePawnCount, "at most 8 %s pawns, got %d", colour, pawns[colour])
		}
	}

	if merr == nil {
		return nil
	}
	merr.ErrorFormat = func(errs []error) string {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		return strings.Join(msgs, "; ")
	}
	return &errors.FENError{Rule: firstRule, Field: 1, Got: layout, Err: merr}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError(errors.RuleSideToMove, 2, field, "want w or b")
	}
	return nil
}

// parseCastlingRights sets the castling flags of kings and rooks. A right
// whose king or rook is not on its home square cannot be used and is
// dropped.
func parseCastlingRights(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	if field == "" {
		return fenError(errors.RuleCastling, 3, field, "empty castling field")
	}

	for i := 0; i < len(field); i++ {
		c := field[i]
		found := false
		for _, cl := range castlingLetters {
			if cl.letter != c {
				continue
			}
			found = true
			king, ok := board.PieceAt(kingHome(cl.colour))
			if !ok || !king.Is(chess.King, cl.colour) {
				break
			}
			rook, ok := board.PieceAt(cl.rook)
			if !ok || !rook.Is(chess.Rook, cl.colour) {
				break
			}
			board.SetCastlingPossible(king.Pos, true)
			board.SetCastlingPossible(rook.Pos, true)
		}
		if !found {
			return fenError(errors.RuleCastling, 3, field, "unknown castling letter %q", c)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square. The square must lie
// on the rank a pawn of the side not to move just skipped.
func parseEnPassant(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	pos, err := chess.ParsePosition(field)
	if err != nil {
		return fenError(errors.RuleEnPassant, 4, field, "bad square")
	}
	mover := board.ToMove.Opposite()
	wantRow := chess.PawnStartRow(mover) + chess.ColourOffset(mover)
	if pos.Row != wantRow {
		return fenError(errors.RuleEnPassant, 4, field, "target must be on rank %d", wantRow+1)
	}
	board.EnPassant = true
	board.EPTarget = pos
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number.
func parseClocks(board *chess.Board, fields []string) error {
	if len(fields) >= 1 {
		n, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return fenError(errors.RuleClock, 5, fields[0], "halfmove clock is not a number")
		}
		board.HalfmoveClock = uint(n)
	}
	if len(fields) >= 2 {
		n, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return fenError(errors.RuleClock, 6, fields[1], "fullmove number is not a number")
		}
		if n == 0 {
			n = 1
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	if board.EnPassant {
		sb.WriteString(board.EPTarget.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement, rank 8 first.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := board.PieceAt(chess.Position{Row: row, Col: col})
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes a letter for each king and rook pair that
// still stand unmoved on their home squares.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	written := false
	for _, cl := range castlingLetters {
		if !hasCastlingRight(board, cl.colour, cl.rook) {
			continue
		}
		sb.WriteByte(cl.letter)
		written = true
	}
	if !written {
		sb.WriteByte('-')
	}
}

func hasCastlingRight(board *chess.Board, colour chess.Colour, rookPos chess.Position) bool {
	king, ok := board.PieceAt(kingHome(colour))
	if !ok || !king.Is(chess.King, colour) || !king.CastlingPossible {
		return false
	}
	rook, ok := board.PieceAt(rookPos)
	return ok && rook.Is(chess.Rook, colour) && rook.CastlingPossible
}
