package game

// GenerateMoves enumerates every distinct legal move of player on b.
// Each straight selection is built once, from its first marble along E, SE
// or SW, so no move is listed twice.
func GenerateMoves(b *Board, player Cell) []Move {
	var moves []Move
	for _, anchor := range b.AllLocations() {
		if b.Get(anchor) != player {
			continue
		}
		for end, d := range Selectables(b, anchor) {
			if d != NoDirection && !d.forward() {
				continue
			}
			sel, err := BuildSelection(b, anchor, end, d)
			if err != nil {
				continue
			}
			moves = append(moves, LegalMoves(b, sel)...)
		}
	}
	return moves
}

// CanMove reports whether the marble at loc belongs to player and is part
// of at least one legal move.
func CanMove(b *Board, player Cell, loc Location) bool {
	if b.Get(loc) != player {
		return false
	}
	for end, d := range Selectables(b, loc) {
		sel, err := BuildSelection(b, loc, end, d)
		if err != nil {
			continue
		}
		if len(LegalMoves(b, sel)) > 0 {
			return true
		}
	}
	return false
}
