package chess

// Piece is a piece as stored on the board. The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
	Pos    Position

	// CastlingPossible is only meaningful for kings and rooks: true until
	// the piece has moved.
	CastlingPossible bool
}

// NewPiece creates a piece of the given kind and colour at pos.
func NewPiece(kind PieceKind, colour Colour, pos Position) Piece {
	return Piece{Kind: kind, Colour: colour, Pos: pos}
}

// IsEmpty returns true if there is no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether the piece has the given kind and colour.
func (p Piece) Is(kind PieceKind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// IsEnemyOf reports whether p is a piece of the opposite colour.
func (p Piece) IsEnemyOf(colour Colour) bool {
	return p.Kind != NoKind && p.Colour != colour
}

// CarriesCastlingFlag reports whether the kind uses the castling flag.
func (k PieceKind) CarriesCastlingFlag() bool {
	return k == King || k == Rook
}

// FENLetter returns the FEN letter of the piece: uppercase for White.
func (p Piece) FENLetter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN letter followed by the square, e.g. "Ke1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return string(p.FENLetter()) + p.Pos.String()
}
