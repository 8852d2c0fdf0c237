package rules

// Rook, bishop and queen: slide until the first piece, which is included only
// when it belongs to the other side.
func genSlidingMoves(v View, pc Piece, dirs [][2]int, moves *[]Square) {
	from := pc.Position
	for _, d := range dirs {
		r, c := from.Row+d[0], from.Col+d[1]
		for onBoard(r, c) {
			to := Square{Row: r, Col: c}
			if v.IsEmpty(to) {
				*moves = append(*moves, to)
			} else {
				if holdsEnemy(v, pc, to) {
					*moves = append(*moves, to)
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// Single hops that ignore whatever is in between: knight, king and heavy
// cavalry.
func genStepMoves(v View, pc Piece, steps [][2]int, moves *[]Square) {
	from := pc.Position
	for _, d := range steps {
		r, c := from.Row+d[0], from.Col+d[1]
		if !onBoard(r, c) {
			continue
		}
		to := Square{Row: r, Col: c}
		if canLand(v, pc, to) {
			*moves = append(*moves, to)
		}
	}
}

// Monarch: king steps plus a two-square orthogonal jump that is blocked by a
// piece on the midpoint.
func genMonarchMoves(v View, pc Piece, moves *[]Square) {
	genStepMoves(v, pc, kingSteps, moves)

	from := pc.Position
	for _, d := range jumpSteps {
		r, c := from.Row+d[0], from.Col+d[1]
		if !onBoard(r, c) {
			continue
		}
		mid := from.add(d[0]/2, d[1]/2)
		if !v.IsEmpty(mid) {
			continue
		}
		to := Square{Row: r, Col: c}
		if canLand(v, pc, to) {
			*moves = append(*moves, to)
		}
	}
}
