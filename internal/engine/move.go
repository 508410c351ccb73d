// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"strings"

	"github.com/lgbarn/negamax-chess/internal/chess"
)

// MoveKind categorizes the move variants. Each variant has its own
// apply/revert pair.
type MoveKind int

const (
	Normal MoveKind = iota
	Capture
	Castling
	EnPassant
	Promotion
	CapturePromotion
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	names := []string{"Normal", "Capture", "Castling", "EnPassant", "Promotion", "CapturePromotion"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move is a reversible move. It references squares only; the pieces it
// carries are snapshots taken from the board it was generated on, so Revert
// never has to re-derive anything from an already mutated board.
type Move struct {
	Kind MoveKind

	// The moved piece as it stood on From before the move.
	Piece    chess.Piece
	From, To chess.Position

	// The captured piece (Capture, EnPassant, CapturePromotion). For en
	// passant its Pos is the square behind To, not To itself.
	Captured chess.Piece

	// The castling rook before the move, and where it ends up.
	Rook   chess.Piece
	RookTo chess.Position

	// The kind a promoting pawn becomes.
	PromoteTo chess.PieceKind

	prior boardState
}

// boardState holds the board bookkeeping a move overwrites.
type boardState struct {
	toMove    chess.Colour
	enPassant bool
	epTarget  chess.Position
	halfmove  uint
	check     [2]bool
}

func snapshot(b *chess.Board) boardState {
	return boardState{
		toMove:    b.ToMove,
		enPassant: b.EnPassant,
		epTarget:  b.EPTarget,
		halfmove:  b.HalfmoveClock,
		check:     b.CheckFlags(),
	}
}

func (s boardState) restore(b *chess.Board) {
	b.ToMove = s.toMove
	b.EnPassant = s.enPassant
	b.EPTarget = s.epTarget
	b.HalfmoveClock = s.halfmove
	b.RestoreCheckFlags(s.check)
}

func newNormal(b *chess.Board, piece chess.Piece, to chess.Position) Move {
	return Move{Kind: Normal, Piece: piece, From: piece.Pos, To: to, prior: snapshot(b)}
}

func newCapture(b *chess.Board, piece, captured chess.Piece) Move {
	return Move{Kind: Capture, Piece: piece, From: piece.Pos, To: captured.Pos, Captured: captured, prior: snapshot(b)}
}

// newEnPassant targets the pawn beside the mover, not the destination square.
func newEnPassant(b *chess.Board, piece chess.Piece, to chess.Position, captured chess.Piece) Move {
	return Move{Kind: EnPassant, Piece: piece, From: piece.Pos, To: to, Captured: captured, prior: snapshot(b)}
}

func newPromotion(b *chess.Board, piece chess.Piece, to chess.Position) Move {
	return Move{Kind: Promotion, Piece: piece, From: piece.Pos, To: to, PromoteTo: chess.Queen, prior: snapshot(b)}
}

func newCapturePromotion(b *chess.Board, piece, captured chess.Piece) Move {
	return Move{
		Kind:      CapturePromotion,
		Piece:     piece,
		From:      piece.Pos,
		To:        captured.Pos,
		Captured:  captured,
		PromoteTo: chess.Queen,
		prior:     snapshot(b),
	}
}

func newCastling(b *chess.Board, king chess.Piece, kingTo chess.Position, rook chess.Piece, rookTo chess.Position) Move {
	return Move{
		Kind:   Castling,
		Piece:  king,
		From:   king.Pos,
		To:     kingTo,
		Rook:   rook,
		RookTo: rookTo,
		prior:  snapshot(b),
	}
}

// IsCapture returns true if this move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Kind == Capture || m.Kind == EnPassant || m.Kind == CapturePromotion
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Kind == Promotion || m.Kind == CapturePromotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == Castling
}

// IsKingside reports whether a castling move goes towards the h-file.
func (m Move) IsKingside() bool {
	return m.Kind == Castling && m.To.Col > m.From.Col
}

// SameAs reports whether two moves describe the same action, ignoring the
// board snapshot they carry.
func (m Move) SameAs(other Move) bool {
	return m.Kind == other.Kind && m.From == other.From && m.To == other.To &&
		m.Piece.Kind == other.Piece.Kind && m.PromoteTo == other.PromoteTo
}

// UCI returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.PromoteTo.Letter()))
	}
	return s
}

// String returns a SAN-like rendering without disambiguation or check
// suffixes; see SAN for the full form.
func (m Move) String() string {
	if m.Kind == Castling {
		if m.IsKingside() {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder
	if m.Piece.Kind == chess.Pawn {
		if m.IsCapture() {
			sb.WriteByte(m.From.File())
		}
	} else {
		sb.WriteByte(m.Piece.Kind.Letter())
	}
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.PromoteTo.Letter())
	}
	return sb.String()
}
