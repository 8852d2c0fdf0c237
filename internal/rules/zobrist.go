package rules

import "sync"

const zobristKinds = int(Man) + 2 // last slot: crowned man

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristKinds][Rows * Cols]uint64
	zobristGame   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for color := 0; color < 2; color++ {
			for k := 1; k < zobristKinds; k++ {
				for sq := 0; sq < Rows*Cols; sq++ {
					zobristPieces[color][k][sq] = next()
				}
			}
		}
		zobristGame = next()
	})
}

func pieceHashKey(pc *Piece, sq Square) uint64 {
	if pc == nil || !sq.OnBoard() {
		return 0
	}
	k := int(pc.Kind)
	if pc.Kind == Man && pc.IsKing {
		k = zobristKinds - 1
	}
	if k <= 0 || k >= zobristKinds {
		return 0
	}
	return zobristPieces[pc.Color][k][sq.Row*Cols+sq.Col]
}

// Hash is the Zobrist hash of the grid and game type. Counters and history
// are not part of it.
func (b *Board) Hash() uint64 {
	initZobrist()

	var h uint64
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			h ^= pieceHashKey(b.grid[r][c], Square{Row: r, Col: c})
		}
	}
	if b.game == Checkers {
		h ^= zobristGame
	}
	return h
}
