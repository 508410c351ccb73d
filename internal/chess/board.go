package chess

// Board represents a chess board with all state needed for the game.
// Pieces are owned by value in the grid; a piece's Pos always equals the
// cell that holds it.
type Board struct {
	// squares[row][col], row 0 = rank 1.
	squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Is an en passant capture target set? If so EPTarget holds the square
	// a capturing pawn would land on. Only set directly after a double step.
	EnPassant bool
	EPTarget  Position

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint

	// Keep track of where the two kings are for check detection.
	kings   [2]Position
	hasKing [2]bool

	// Cached check status per colour, refreshed after every applied move.
	inCheck [2]bool
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// Clear removes every piece and resets the game-state fields.
func (b *Board) Clear() {
	*b = Board{ToMove: White, MoveNumber: 1}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// IsOccupied returns true if a piece stands on pos.
func (b *Board) IsOccupied(pos Position) bool {
	return b.squares[pos.Row][pos.Col].Kind != NoKind
}

// PieceAt returns the piece on pos and whether the square is occupied.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	p := b.squares[pos.Row][pos.Col]
	return p, p.Kind != NoKind
}

// SetPiece places p on p.Pos, replacing whatever stood there.
func (b *Board) SetPiece(p Piece) {
	b.squares[p.Pos.Row][p.Pos.Col] = p
	if p.Kind == King {
		b.kings[p.Colour] = p.Pos
		b.hasKing[p.Colour] = true
	}
}

// DeletePiece removes and returns the piece on pos.
func (b *Board) DeletePiece(pos Position) Piece {
	p := b.squares[pos.Row][pos.Col]
	b.squares[pos.Row][pos.Col] = Piece{}
	if p.Kind == King && b.kings[p.Colour] == pos {
		b.hasKing[p.Colour] = false
	}
	return p
}

// Relocate moves the piece on from to the empty square to. It has no other
// side effects; captures must be removed by the caller first.
func (b *Board) Relocate(from, to Position) {
	p := b.squares[from.Row][from.Col]
	b.squares[from.Row][from.Col] = Piece{}
	p.Pos = to
	b.squares[to.Row][to.Col] = p
	if p.Kind == King {
		b.kings[p.Colour] = to
	}
}

// SetCastlingPossible updates the castling flag of the piece on pos.
func (b *Board) SetCastlingPossible(pos Position, possible bool) {
	b.squares[pos.Row][pos.Col].CastlingPossible = possible
}

// King returns the king of the given colour and whether it is on the board.
func (b *Board) King(colour Colour) (Piece, bool) {
	if !b.hasKing[colour] {
		return Piece{}, false
	}
	return b.PieceAt(b.kings[colour])
}

// Pieces returns every piece of the colour in a1..h8 order.
func (b *Board) Pieces(colour Colour) []Piece {
	pieces := make([]Piece, 0, 16)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.squares[row][col]
			if p.Kind != NoKind && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// PiecesOfKind returns the pieces of the given kind and colour in a1..h8 order.
func (b *Board) PiecesOfKind(colour Colour, kind PieceKind) []Piece {
	var pieces []Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.squares[row][col]
			if p.Kind == kind && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Rooks returns the rooks of the colour.
func (b *Board) Rooks(colour Colour) []Piece {
	return b.PiecesOfKind(colour, Rook)
}

// Queens returns the queens of the colour.
func (b *Board) Queens(colour Colour) []Piece {
	return b.PiecesOfKind(colour, Queen)
}

// EmptyBetween reports whether every square strictly between a and b on
// the same row is empty. Positions on different rows are never "between".
func (b *Board) EmptyBetween(a, c Position) bool {
	if a.Row != c.Row {
		return false
	}
	lo, hi := a.Col, c.Col
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if b.squares[a.Row][col].Kind != NoKind {
			return false
		}
	}
	return true
}

// InCheck returns the cached check flag for the colour.
func (b *Board) InCheck(colour Colour) bool {
	return b.inCheck[colour]
}

// CheckFlags returns both cached check flags, indexed by Colour.
func (b *Board) CheckFlags() [2]bool {
	return b.inCheck
}

// RestoreCheckFlags reinstates previously saved check flags.
func (b *Board) RestoreCheckFlags(flags [2]bool) {
	b.inCheck = flags
}

// RefreshCheckFlags recomputes, for each king, whether any opposing piece
// attacks its square.
func (b *Board) RefreshCheckFlags() {
	for _, colour := range [2]Colour{Black, White} {
		b.inCheck[colour] = b.hasKing[colour] &&
			b.IsSquareAttacked(b.kings[colour], colour.Opposite())
	}
}
