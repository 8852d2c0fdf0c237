package rules

// View is the read-only board handed to the move rules.
type View interface {
	IsEmpty(sq Square) bool
	PieceAt(sq Square) (Piece, bool)
}

var (
	rookDirs   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = append(append([][2]int{}, rookDirs...), bishopDirs...)
	kingSteps  = queenDirs
	jumpSteps  = [][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

	knightSteps = [][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
)

// PossibleMoves lists the pseudo-legal destinations of pc: turn order and
// monarch safety are not considered.
func PossibleMoves(v View, pc Piece) []Square {
	var moves []Square
	switch pc.Kind {
	case Pawn:
		genPawnMoves(v, pc, &moves)
	case Spearman:
		genSpearmanMoves(v, pc, &moves)
	case Rook:
		genSlidingMoves(v, pc, rookDirs, &moves)
	case Bishop:
		genSlidingMoves(v, pc, bishopDirs, &moves)
	case Queen:
		genSlidingMoves(v, pc, queenDirs, &moves)
	case Knight:
		genStepMoves(v, pc, knightSteps, &moves)
	case King:
		genStepMoves(v, pc, kingSteps, &moves)
	case HeavyCavalry:
		genStepMoves(v, pc, jumpSteps, &moves)
	case Monarch:
		genMonarchMoves(v, pc, &moves)
	case Man:
		genManMoves(v, pc, &moves)
	}
	return moves
}

// canLand reports whether pc may end on sq: empty or enemy-held.
func canLand(v View, pc Piece, sq Square) bool {
	if v.IsEmpty(sq) {
		return true
	}
	other, ok := v.PieceAt(sq)
	return ok && other.Color != pc.Color
}

func holdsEnemy(v View, pc Piece, sq Square) bool {
	other, ok := v.PieceAt(sq)
	return ok && other.Color != pc.Color
}
