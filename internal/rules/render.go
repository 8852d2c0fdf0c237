package rules

import (
	"strconv"
	"strings"
	"unicode"
)

// Symbol is the console letter of a white piece of kind k. Knight and King
// share 'K'.
func (k Kind) Symbol() rune {
	switch k {
	case Pawn:
		return 'P'
	case Rook:
		return 'R'
	case Knight, King:
		return 'K'
	case Bishop:
		return 'B'
	case Queen:
		return 'Q'
	case Spearman:
		return 'S'
	case HeavyCavalry:
		return 'H'
	case Monarch:
		return 'M'
	case Man:
		return 'C'
	}
	return '?'
}

// Render draws the board for the console. Squares listed in hints are shown
// as '*' whatever stands on them.
func (b *Board) Render(hints []Square) string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for r := 0; r < Rows; r++ {
		sb.WriteString(strconv.Itoa(Rows - r))
		for c := 0; c < Cols; c++ {
			sb.WriteByte(' ')
			sq := Square{Row: r, Col: c}
			pc := b.grid[r][c]
			switch {
			case containsSquare(hints, sq):
				sb.WriteByte('*')
			case pc == nil:
				sb.WriteByte('.')
			default:
				sym := pc.Kind.Symbol()
				if pc.Color == Black {
					sym = unicode.ToLower(sym)
				}
				sb.WriteRune(sym)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
