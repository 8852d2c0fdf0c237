package httpserver

import (
	"encoding/json"
	"strconv"

	"duelboard/internal/rules"
	"duelboard/internal/server/game"
)

// CreateRequest starts a new game: "chess" or "checkers".
type CreateRequest struct {
	Game string `json:"game"`
}

type CreateResponse struct {
	GameID string        `json:"game_id"`
	State  StateResponse `json:"state"`
}

// MoveDTO carries squares in "e2" notation.
type MoveDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type PieceDTO struct {
	Color  string `json:"color"`
	Kind   string `json:"kind"`
	Square string `json:"square"`
	IsKing bool   `json:"is_king,omitempty"`
}

type RecordDTO struct {
	From     string    `json:"from"`
	To       string    `json:"to"`
	Captured *PieceDTO `json:"captured"`
}

type StateResponse struct {
	GameID    string         `json:"game_id"`
	Game      string         `json:"game"`
	Position  string         `json:"position"`
	ToMove    string         `json:"to_move"`
	MoveCount map[string]int `json:"move_count"`
	History   []RecordDTO    `json:"history"`
	Hash      string         `json:"hash"`
}

type MovesResponse struct {
	From  string   `json:"from"`
	Moves []string `json:"moves"`
}

type UndoRequest struct {
	Steps int `json:"steps"`
}

type UndoResponse struct {
	Undone int           `json:"undone"`
	State  StateResponse `json:"state"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func pieceToDTO(pc *rules.Piece) *PieceDTO {
	if pc == nil {
		return nil
	}
	return &PieceDTO{
		Color:  pc.Color.String(),
		Kind:   pc.Kind.String(),
		Square: pc.Position.String(),
		IsKing: pc.IsKing,
	}
}

func stateToDTO(s game.Snapshot) StateResponse {
	history := make([]RecordDTO, len(s.History))
	for i, rec := range s.History {
		history[i] = RecordDTO{
			From:     rec.From.String(),
			To:       rec.To.String(),
			Captured: pieceToDTO(rec.Captured),
		}
	}
	return StateResponse{
		GameID:   s.ID,
		Game:     s.Game.String(),
		Position: s.Layout,
		ToMove:   s.Turn.String(),
		MoveCount: map[string]int{
			rules.White.String(): s.MoveCount[rules.White],
			rules.Black.String(): s.MoveCount[rules.Black],
		},
		History: history,
		Hash:    strconv.FormatUint(s.Hash, 16),
	}
}

func squaresToDTO(list []rules.Square) []string {
	out := make([]string, len(list))
	for i, sq := range list {
		out[i] = sq.String()
	}
	return out
}

// MessageType tags websocket frames.
type MessageType string

const (
	MessageMove  MessageType = "move"
	MessageUndo  MessageType = "undo"
	MessageState MessageType = "state"
	MessageError MessageType = "error"
)

type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func newMessage(t MessageType, v any) Message {
	raw, err := json.Marshal(v)
	if err != nil {
		raw, _ = json.Marshal(ErrorResponse{Error: err.Error()})
		t = MessageError
	}
	return Message{Type: t, Payload: raw}
}

func errorMessage(err error) Message {
	return newMessage(MessageError, ErrorResponse{Error: err.Error()})
}
