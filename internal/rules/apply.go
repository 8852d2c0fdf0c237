package rules

import (
	"errors"
	"fmt"
)

var (
	ErrOffBoard           = errors.New("square off board")
	ErrEmptySquare        = errors.New("no piece on start square")
	ErrNotYourPiece       = errors.New("piece belongs to the other side")
	ErrIllegalDestination = errors.New("destination not reachable")
	ErrNoHistory          = errors.New("no move to undo")
)

// Move validates and applies a move for mover. On any error the board is
// left untouched.
//
// In checkers a two-row move removes the piece on the midpoint and records
// it. Chess captures only overwrite the destination and record nothing, so
// undoing one does not bring the taken piece back.
func (b *Board) Move(from, to Square, mover Color) error {
	if !from.OnBoard() || !to.OnBoard() {
		return ErrOffBoard
	}
	pc := b.grid[from.Row][from.Col]
	if pc == nil {
		return fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}
	if pc.Color != mover {
		return fmt.Errorf("%w: %s is %s", ErrNotYourPiece, from, pc.Color)
	}
	if !containsSquare(PossibleMoves(b, *pc), to) {
		return fmt.Errorf("%w: %s %s-%s", ErrIllegalDestination, pc.Kind, from, to)
	}

	var captured *Piece
	if b.game == Checkers && isJump(from, to) {
		mid := midpoint(from, to)
		captured = b.grid[mid.Row][mid.Col]
		b.grid[mid.Row][mid.Col] = nil
	}

	b.history = append(b.history, Record{From: from, To: to, Captured: captured})
	b.grid[to.Row][to.Col] = pc
	b.grid[from.Row][from.Col] = nil
	pc.Position = to
	b.moveCount[mover]++
	return nil
}

// ApplyMove is Move with every rejection folded into false.
func (b *Board) ApplyMove(from, to Square, mover Color) bool {
	return b.Move(from, to, mover) == nil
}

// Undo reverts the most recent move. The caller owns the turn and must flip
// it after each successful undo.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return ErrNoHistory
	}
	rec := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	pc := b.grid[rec.To.Row][rec.To.Col]
	b.grid[rec.From.Row][rec.From.Col] = pc
	b.grid[rec.To.Row][rec.To.Col] = nil
	pc.Position = rec.From

	if rec.Captured != nil {
		at := rec.To
		if b.game == Checkers {
			at = midpoint(rec.From, rec.To)
		}
		b.grid[at.Row][at.Col] = rec.Captured
		rec.Captured.Position = at
	}

	b.moveCount[pc.Color]--
	return nil
}

func (b *Board) UndoLastMove() bool {
	return b.Undo() == nil
}

func containsSquare(list []Square, sq Square) bool {
	for _, s := range list {
		if s == sq {
			return true
		}
	}
	return false
}
