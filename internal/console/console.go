// Package console runs a two-player game over a line-oriented text stream.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"duelboard/internal/rules"
)

const Banner = "Choose a game: /chess or /checkers. Commands: /back_step [n] undoes n moves, /cancel drops the selected piece, /quit leaves."

var ErrUnknownGame = errors.New("unknown game")

// Game is one console session. The engine does not track whose turn it is,
// so Game does.
type Game struct {
	board *rules.Board
	turn  rules.Color

	selected *rules.Square
	hints    []rules.Square

	in  *bufio.Scanner
	out io.Writer
}

func New(game rules.GameType, in io.Reader, out io.Writer) *Game {
	return &Game{
		board: rules.NewBoard(game),
		turn:  rules.White,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// ChooseGame prints the banner and reads the game selection line.
func ChooseGame(in io.Reader, out io.Writer) (*Game, error) {
	fmt.Fprintln(out, Banner)
	fmt.Fprint(out, "Enter command: ")
	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	game, ok := rules.ParseGameType(sc.Text())
	if !ok || !strings.HasPrefix(strings.TrimSpace(sc.Text()), "/") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, strings.TrimSpace(sc.Text()))
	}
	g := New(game, nil, out)
	g.in = sc
	return g, nil
}

func (g *Game) Board() *rules.Board { return g.board }
func (g *Game) Turn() rules.Color   { return g.turn }

// Play runs until the input ends or /quit is read.
func (g *Game) Play() error {
	for {
		fmt.Fprint(g.out, g.board.Render(g.hints))
		fmt.Fprintf(g.out, "Turn: %s\n", g.turn)
		fmt.Fprintf(g.out, "Moves white: %d, black: %d\n",
			g.board.MoveCount(rules.White), g.board.MoveCount(rules.Black))

		if g.selected == nil {
			fmt.Fprint(g.out, "Select piece: ")
		} else {
			fmt.Fprint(g.out, "Select destination: ")
		}
		if !g.in.Scan() {
			return g.in.Err()
		}
		if !g.Handle(g.in.Text()) {
			return nil
		}
	}
}

// Handle processes one input line and reports whether the session goes on.
// Malformed input is ignored.
func (g *Game) Handle(line string) bool {
	cmd := strings.ToLower(strings.TrimSpace(line))
	switch {
	case cmd == "/quit":
		return false
	case strings.HasPrefix(cmd, "/back_step"):
		g.backStep(cmd)
		return true
	case cmd == "/cancel":
		g.clearSelection()
		return true
	}

	sq, ok := rules.ParseSquare(cmd)
	if !ok {
		return true
	}
	if g.selected == nil {
		g.selectPiece(sq)
		return true
	}
	if !containsSquare(g.hints, sq) {
		return true
	}
	if g.board.ApplyMove(*g.selected, sq, g.turn) {
		g.turn = g.turn.Opposite()
		g.clearSelection()
	}
	return true
}

func (g *Game) selectPiece(sq rules.Square) {
	pc := g.board.Piece(sq)
	if pc == nil || pc.Color != g.turn {
		return
	}
	g.selected = &sq
	g.hints = g.board.LegalDestinations(sq)
}

// backStep undoes up to n moves ("/back_step n", default 1), flipping the
// turn after each one that succeeded.
func (g *Game) backStep(cmd string) {
	steps := 1
	if fields := strings.Fields(cmd); len(fields) > 1 {
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return
		}
		steps = n
	}
	for i := 0; i < steps; i++ {
		if !g.board.UndoLastMove() {
			break
		}
		g.turn = g.turn.Opposite()
	}
	g.clearSelection()
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.hints = nil
}

func containsSquare(list []rules.Square, sq rules.Square) bool {
	for _, s := range list {
		if s == sq {
			return true
		}
	}
	return false
}
