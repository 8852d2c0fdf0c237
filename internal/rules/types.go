package rules

import (
	"fmt"
	"strings"
)

type Color int8

const (
	White Color = 0 // first player, "белые"
	Black Color = 1 // second player, "черные"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColor accepts the English names, their initials and the Russian
// names used by the console.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w", "белые":
		return White, true
	case "black", "b", "черные", "чёрные":
		return Black, true
	}
	return White, false
}

type Kind int8

const (
	KindNone Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
	Spearman
	HeavyCavalry
	Monarch
	Man // checkers piece
)

var kindNames = [...]string{
	KindNone:     "none",
	Pawn:         "pawn",
	Rook:         "rook",
	Knight:       "knight",
	Bishop:       "bishop",
	Queen:        "queen",
	King:         "king",
	Spearman:     "spearman",
	HeavyCavalry: "heavy_cavalry",
	Monarch:      "monarch",
	Man:          "checker",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", k)
	}
	return kindNames[k]
}

type GameType int8

const (
	Chess GameType = iota
	Checkers
)

func (g GameType) String() string {
	if g == Checkers {
		return "checkers"
	}
	return "chess"
}

// ParseGameType accepts "chess"/"checkers" with or without the console's
// leading slash.
func ParseGameType(s string) (GameType, bool) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "/") {
	case "chess":
		return Chess, true
	case "checkers":
		return Checkers, true
	}
	return Chess, false
}

type Piece struct {
	Color    Color
	Kind     Kind
	Position Square
	IsKing   bool // checkers only; nothing in the rules sets it
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s@%s", p.Color, p.Kind, p.Position)
}

// Move is a (start, end) pair as kept in the move history.
type Move struct {
	From Square
	To   Square
}

// Record is one history entry. Captured is nil unless the move removed a
// piece from the board.
type Record struct {
	From     Square
	To       Square
	Captured *Piece
}
