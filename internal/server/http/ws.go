package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"

	"duelboard/internal/server/game"
)

// ErrGameClosed is sent to watchers of a game that was deleted.
var ErrGameClosed = errors.New("game closed")

// client serialises writes to one connection; broadcasts come from other
// connections' goroutines.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (cl *client) send(msg Message) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.WriteJSON(msg)
}

// hub tracks the websocket watchers of each game.
type hub struct {
	mu    sync.RWMutex
	games map[string]map[*client]struct{}
}

func newHub() *hub {
	return &hub{games: make(map[string]map[*client]struct{})}
}

func (h *hub) join(gameID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.games[gameID]
	if !ok {
		set = make(map[*client]struct{})
		h.games[gameID] = set
	}
	set[cl] = struct{}{}
}

func (h *hub) leave(gameID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.games[gameID]
	delete(set, cl)
	if len(set) == 0 {
		delete(h.games, gameID)
	}
}

func (h *hub) watchers(gameID string) []*client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*client, 0, len(h.games[gameID]))
	for cl := range h.games[gameID] {
		out = append(out, cl)
	}
	return out
}

// close sends msg to every watcher of gameID, disconnects them and forgets
// the game. Their read loops then fail and return.
func (h *hub) close(gameID string, msg Message) {
	h.mu.Lock()
	set := h.games[gameID]
	delete(h.games, gameID)
	h.mu.Unlock()

	for cl := range set {
		cl.mu.Lock()
		if err := cl.conn.WriteJSON(msg); err != nil {
			log.Printf("ws close game %s: %v", gameID, err)
		}
		cl.conn.Close()
		cl.mu.Unlock()
	}
}

func (h *hub) broadcast(gameID string, msg Message) {
	for _, cl := range h.watchers(gameID) {
		if err := cl.send(msg); err != nil {
			log.Printf("ws broadcast to game %s: %v", gameID, err)
		}
	}
}

// handleSocket runs one websocket connection for /ws/game/:id.
func (h *Handler) handleSocket(conn *websocket.Conn) {
	gameID := conn.Params("id")
	cl := &client{conn: conn}

	s, err := h.games.Get(gameID)
	if err != nil {
		_ = cl.send(errorMessage(err))
		conn.Close()
		return
	}

	h.hub.join(gameID, cl)
	defer h.hub.leave(gameID, cl)

	if err := cl.send(newMessage(MessageState, stateToDTO(s.Snapshot()))); err != nil {
		log.Printf("ws game %s: %v", gameID, err)
		return
	}

	for {
		messageType, raw, err := conn.ReadMessage()
		if err != nil {
			log.Printf("ws game %s read: %v", gameID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			_ = cl.send(errorMessage(fmt.Errorf("bad json: %w", err)))
			continue
		}

		// the session may have been deleted while this socket was idle
		if _, err := h.games.Get(gameID); err != nil {
			_ = cl.send(errorMessage(fmt.Errorf("%w: %v", ErrGameClosed, err)))
			return
		}
		reply, changed := dispatch(s, msg)
		if changed {
			h.hub.broadcast(gameID, reply)
			continue
		}
		if err := cl.send(reply); err != nil {
			log.Printf("ws game %s write: %v", gameID, err)
			return
		}
	}
}

// dispatch applies one client message to the session. changed reports
// whether the board moved, in which case reply goes to every watcher.
func dispatch(s *game.Session, msg Message) (reply Message, changed bool) {
	switch msg.Type {
	case MessageState:
		return newMessage(MessageState, stateToDTO(s.Snapshot())), false

	case MessageMove:
		var req MoveDTO
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return errorMessage(fmt.Errorf("bad move payload: %w", err)), false
		}
		snap, err := playMove(s, req)
		if err != nil {
			return errorMessage(err), false
		}
		return newMessage(MessageState, stateToDTO(snap)), true

	case MessageUndo:
		req := UndoRequest{Steps: 1}
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &req); err != nil {
				return errorMessage(fmt.Errorf("bad undo payload: %w", err)), false
			}
		}
		resp := undoMoves(s, req)
		return newMessage(MessageState, resp.State), resp.Undone > 0

	default:
		return errorMessage(fmt.Errorf("unknown message type: %q", msg.Type)), false
	}
}
