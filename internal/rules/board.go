package rules

// Board owns the grid, the per-side move counters and the move history of
// one game. It is not safe for concurrent use.
type Board struct {
	grid      [Rows][Cols]*Piece
	game      GameType
	moveCount [2]int
	history   []Record
}

var chessBackRank = [Cols]Kind{Rook, HeavyCavalry, Bishop, Queen, Monarch, Bishop, Knight, Rook}

// NewBoard returns a board with the full starting layout of the given game.
func NewBoard(game GameType) *Board {
	b := &Board{game: game}
	switch game {
	case Chess:
		for c := 0; c < Cols; c++ {
			front := Pawn
			if c == 0 || c == Cols-1 {
				front = Spearman
			}
			b.place(Black, front, Square{Row: 1, Col: c})
			b.place(White, front, Square{Row: 6, Col: c})
			b.place(Black, chessBackRank[c], Square{Row: 0, Col: c})
			b.place(White, chessBackRank[c], Square{Row: 7, Col: c})
		}
	case Checkers:
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				if (r+c)%2 != 1 {
					continue
				}
				switch {
				case r < 3:
					b.place(Black, Man, Square{Row: r, Col: c})
				case r > 4:
					b.place(White, Man, Square{Row: r, Col: c})
				}
			}
		}
	}
	return b
}

func (b *Board) place(color Color, kind Kind, sq Square) *Piece {
	pc := &Piece{Color: color, Kind: kind, Position: sq}
	b.grid[sq.Row][sq.Col] = pc
	return pc
}

func (b *Board) Game() GameType { return b.game }

// IsEmpty and PieceAt do not bounds-check; callers do.
func (b *Board) IsEmpty(sq Square) bool {
	return b.grid[sq.Row][sq.Col] == nil
}

func (b *Board) PieceAt(sq Square) (Piece, bool) {
	pc := b.grid[sq.Row][sq.Col]
	if pc == nil {
		return Piece{}, false
	}
	return *pc, true
}

// Piece returns the occupant of sq, or nil. The pointer is for rendering and
// inspection; mutate the board through Move and Undo only.
func (b *Board) Piece(sq Square) *Piece {
	return b.grid[sq.Row][sq.Col]
}

// LegalDestinations returns the pseudo-legal destinations of the piece on
// sq, or nil if sq is empty.
func (b *Board) LegalDestinations(sq Square) []Square {
	pc := b.grid[sq.Row][sq.Col]
	if pc == nil {
		return nil
	}
	return PossibleMoves(b, *pc)
}

// MoveCount is the number of applied, not undone moves made by c.
func (b *Board) MoveCount(c Color) int {
	return b.moveCount[c]
}

// History returns a copy of the history stack, oldest first. Captured pieces
// are copied too, so the result stays valid after later undos.
func (b *Board) History() []Record {
	out := make([]Record, len(b.history))
	for i, rec := range b.history {
		out[i] = rec
		if rec.Captured != nil {
			pc := *rec.Captured
			out[i].Captured = &pc
		}
	}
	return out
}

// MoveHistory is the (start, end) view of the history.
func (b *Board) MoveHistory() []Move {
	out := make([]Move, len(b.history))
	for i, rec := range b.history {
		out[i] = Move{From: rec.From, To: rec.To}
	}
	return out
}

// CapturedPieces runs parallel to MoveHistory; entries are nil for moves that
// recorded no capture. The pieces are copies.
func (b *Board) CapturedPieces() []*Piece {
	out := make([]*Piece, len(b.history))
	for i, rec := range b.history {
		if rec.Captured != nil {
			pc := *rec.Captured
			out[i] = &pc
		}
	}
	return out
}
