package rules

import (
	"errors"
	"strings"
	"unicode"
)

// Layout letters, uppercase for white. 'D' is a crowned checkers man.
var letterToKind = map[rune]Kind{
	'p': Pawn,
	'r': Rook,
	'n': Knight,
	'b': Bishop,
	'q': Queen,
	'k': King,
	's': Spearman,
	'h': HeavyCavalry,
	'm': Monarch,
	'c': Man,
	'd': Man,
}

// kindLetters is the layout letter of each kind; a crowned man uses 'd'.
var kindLetters = [...]rune{
	Pawn:         'p',
	Rook:         'r',
	Knight:       'n',
	Bishop:       'b',
	Queen:        'q',
	King:         'k',
	Spearman:     's',
	HeavyCavalry: 'h',
	Monarch:      'm',
	Man:          'c',
}

func pieceToChar(pc *Piece) rune {
	if pc == nil || pc.Kind <= KindNone || int(pc.Kind) >= len(kindLetters) {
		return '.'
	}
	base := kindLetters[pc.Kind]
	if pc.Kind == Man && pc.IsKing {
		base = 'd'
	}
	if pc.Color == White {
		return unicode.ToUpper(base)
	}
	return base
}

// Encode writes the grid FEN-style: eight rows separated by '/', digits for
// runs of empty squares, then a space and the game type.
func (b *Board) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := b.grid[r][c]
			if pc == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.game.String())
	return sb.String()
}

var ErrInvalidLayout = errors.New("invalid layout")

// DecodeBoard builds a board from Encode output. The result has no history
// and zero move counts.
func DecodeBoard(s string) (*Board, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return nil, ErrInvalidLayout
	}
	game, ok := ParseGameType(parts[1])
	if !ok {
		return nil, ErrInvalidLayout
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidLayout
	}
	b := &Board{game: game}
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return nil, ErrInvalidLayout
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return nil, ErrInvalidLayout
			}
			color := Black
			if unicode.IsUpper(ch) {
				color = White
			}
			pc := b.place(color, kind, Square{Row: r, Col: c})
			pc.IsKing = unicode.ToLower(ch) == 'd'
			c++
		}
		if c != Cols {
			return nil, ErrInvalidLayout
		}
	}
	return b, nil
}
