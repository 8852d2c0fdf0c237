package rules

// Checkers man: forward diagonal steps onto empty squares, forward jumps over
// an enemy onto an empty square. A crowned man also steps backwards (no
// backward jumps).
func genManMoves(v View, pc Piece, moves *[]Square) {
	from := pc.Position
	dir := forward(pc.Color)

	for _, dc := range []int{-1, +1} {
		to := from.add(dir, dc)
		if to.OnBoard() && v.IsEmpty(to) {
			*moves = append(*moves, to)
		}
	}

	for _, dc := range []int{-2, +2} {
		to := from.add(2*dir, dc)
		if !to.OnBoard() {
			continue
		}
		mid := from.add(dir, dc/2)
		if holdsEnemy(v, pc, mid) && v.IsEmpty(to) {
			*moves = append(*moves, to)
		}
	}

	if pc.IsKing {
		for _, dc := range []int{-1, +1} {
			to := from.add(-dir, dc)
			if to.OnBoard() && v.IsEmpty(to) {
				*moves = append(*moves, to)
			}
		}
	}
}

// isJump reports whether a checkers move spans two rows, i.e. captures.
func isJump(from, to Square) bool {
	return abs(to.Row-from.Row) == 2
}

func midpoint(from, to Square) Square {
	return Square{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2}
}
