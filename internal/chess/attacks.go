package chess

// IsSquareAttacked returns true if any piece of byColour attacks pos, that is,
// pos lies in the raw capture/cover set of one of its pieces. Occupancy of
// pos itself is ignored.
func (b *Board) IsSquareAttacked(pos Position, byColour Colour) bool {
	// Pawns attack diagonally forward, so look one row behind pos from
	// the attacker's point of view.
	pawnRow := -ColourOffset(byColour)
	for _, dc := range PawnCaptureCols {
		if q, ok := pos.Offset(pawnRow, dc); ok && b.squares[q.Row][q.Col].Is(Pawn, byColour) {
			return true
		}
	}

	for _, off := range KnightOffsets {
		if q, ok := pos.Offset(off[0], off[1]); ok && b.squares[q.Row][q.Col].Is(Knight, byColour) {
			return true
		}
	}

	for _, off := range KingOffsets {
		if q, ok := pos.Offset(off[0], off[1]); ok && b.squares[q.Row][q.Col].Is(King, byColour) {
			return true
		}
	}

	if b.rayHits(pos, DiagonalDirs[:], byColour, Bishop) {
		return true
	}
	return b.rayHits(pos, StraightDirs[:], byColour, Rook)
}

// rayHits walks each direction from pos until the first occupied square and
// reports whether that square holds a slider of byColour: the given kind or
// a queen.
func (b *Board) rayHits(pos Position, dirs [][2]int, byColour Colour, kind PieceKind) bool {
	for _, dir := range dirs {
		q, ok := pos.Offset(dir[0], dir[1])
		for ok {
			p := b.squares[q.Row][q.Col]
			if p.Kind != NoKind {
				if p.Colour == byColour && (p.Kind == kind || p.Kind == Queen) {
					return true
				}
				break // Blocked
			}
			q, ok = q.Offset(dir[0], dir[1])
		}
	}
	return false
}
