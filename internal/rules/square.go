package rules

import "fmt"

const (
	Rows = 8
	Cols = 8
)

type Square struct {
	Row int
	Col int
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func (s Square) OnBoard() bool { return onBoard(s.Row, s.Col) }

func (s Square) add(dr, dc int) Square { return Square{Row: s.Row + dr, Col: s.Col + dc} }

// String renders the square the way the console reads it: file a-h for the
// column, rank 8-1 for the row (row 0 is rank 8).
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, Rows-s.Row)
}

// ParseSquare reads "e2"-style coordinates. Anything after the first two
// characters is ignored, matching the console input.
func ParseSquare(s string) (Square, bool) {
	if len(s) < 2 {
		return Square{}, false
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{Row: Rows - int(rank-'0'), Col: int(file - 'a')}, true
}

// forward row step: white moves up (-1), black down (+1)
func forward(c Color) int {
	if c == White {
		return -1
	}
	return +1
}

func pawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
