package game

import (
	"sync"
	"time"

	"duelboard/internal/rules"
)

// Session is one game held by the server. The board has no notion of whose
// turn it is, so the session keeps Turn and flips it on every applied or
// undone move.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	board   *rules.Board
	turn    rules.Color
	updated time.Time
}

// Snapshot is a consistent copy of a session's state.
type Snapshot struct {
	ID        string
	Game      rules.GameType
	Layout    string
	Hash      uint64
	Turn      rules.Color
	MoveCount [2]int
	History   []rules.Record
	UpdatedAt time.Time
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:        s.ID,
		Game:      s.board.Game(),
		Layout:    s.board.Encode(),
		Hash:      s.board.Hash(),
		Turn:      s.turn,
		MoveCount: [2]int{s.board.MoveCount(rules.White), s.board.MoveCount(rules.Black)},
		History:   s.board.History(),
		UpdatedAt: s.updated,
	}
}

// Destinations lists where the piece on sq may go. Squares off the board
// and empty squares give nil.
func (s *Session) Destinations(sq rules.Square) []rules.Square {
	if !sq.OnBoard() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.LegalDestinations(sq)
}

// Move plays from-to for the side to move.
func (s *Session) Move(from, to rules.Square) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.board.Move(from, to, s.turn); err != nil {
		return s.snapshotLocked(), err
	}
	s.turn = s.turn.Opposite()
	s.updated = time.Now()
	return s.snapshotLocked(), nil
}

// Undo reverts up to steps moves and returns how many were undone.
func (s *Session) Undo(steps int) (int, Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	undone := 0
	for ; undone < steps; undone++ {
		if !s.board.UndoLastMove() {
			break
		}
		s.turn = s.turn.Opposite()
	}
	if undone > 0 {
		s.updated = time.Now()
	}
	return undone, s.snapshotLocked()
}
