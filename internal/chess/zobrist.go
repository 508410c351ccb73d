package chess

// Zobrist keys, generated once from a fixed seed so hashes are stable
// across runs.
var (
	zobristPieces    [2][NumPieceKinds][NumSquares]uint64
	zobristCastling  [NumSquares]uint64
	zobristEnPassant [NumSquares]uint64
	zobristBlack     uint64
)

func init() {
	seed := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		// splitmix64
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for colour := range zobristPieces {
		for kind := range zobristPieces[colour] {
			for sq := range zobristPieces[colour][kind] {
				zobristPieces[colour][kind][sq] = next()
			}
		}
	}
	for sq := 0; sq < NumSquares; sq++ {
		zobristCastling[sq] = next()
		zobristEnPassant[sq] = next()
	}
	zobristBlack = next()
}

// PositionHash returns the Zobrist hash of the position: pieces, castling
// flags, en passant target and side to move. Clocks are not included.
func (b *Board) PositionHash() uint64 {
	var h uint64
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.squares[row][col]
			if p.Kind == NoKind {
				continue
			}
			sq := row*BoardSize + col
			h ^= zobristPieces[p.Colour][p.Kind][sq]
			if p.CastlingPossible {
				h ^= zobristCastling[sq]
			}
		}
	}
	if b.EnPassant {
		h ^= zobristEnPassant[b.EPTarget.Index()]
	}
	if b.ToMove == Black {
		h ^= zobristBlack
	}
	return h
}
