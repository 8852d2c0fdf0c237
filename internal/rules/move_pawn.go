package rules

func genPawnMoves(v View, pc Piece, moves *[]Square) {
	from := pc.Position
	dir := forward(pc.Color)

	one := from.add(dir, 0)
	if one.OnBoard() && v.IsEmpty(one) {
		*moves = append(*moves, one)
		if from.Row == pawnStartRow(pc.Color) {
			two := from.add(2*dir, 0)
			if v.IsEmpty(two) {
				*moves = append(*moves, two)
			}
		}
	}

	// diagonals only with something to take; no en passant
	for _, dc := range []int{-1, +1} {
		to := from.add(dir, dc)
		if !to.OnBoard() {
			continue
		}
		if holdsEnemy(v, pc, to) {
			*moves = append(*moves, to)
		}
	}
}

// Spearman: pawn step forward, but the diagonals are open moves as well as
// captures. No double step.
func genSpearmanMoves(v View, pc Piece, moves *[]Square) {
	from := pc.Position
	dir := forward(pc.Color)

	one := from.add(dir, 0)
	if one.OnBoard() && v.IsEmpty(one) {
		*moves = append(*moves, one)
	}

	for _, dc := range []int{-1, +1} {
		to := from.add(dir, dc)
		if !to.OnBoard() {
			continue
		}
		if canLand(v, pc, to) {
			*moves = append(*moves, to)
		}
	}
}
