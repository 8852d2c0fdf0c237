package httpserver

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"duelboard/internal/rules"
	"duelboard/internal/server/game"
)

var (
	ErrBadSquare = errors.New("bad square")
	ErrBadGame   = errors.New("unknown game type")
)

// Handler serves the /api/game routes and the websocket channel.
type Handler struct {
	games *game.Manager
	hub   *hub
}

func NewHandler(games *game.Manager) *Handler {
	return &Handler{games: games, hub: newHub()}
}

func (h *Handler) Games() *game.Manager { return h.games }

func (h *Handler) handleCreate(c *fiber.Ctx) error {
	req := CreateRequest{Game: rules.Chess.String()}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, fmt.Errorf("bad json: %w", err))
		}
	}
	gt, ok := rules.ParseGameType(req.Game)
	if !ok {
		return writeError(c, fiber.StatusBadRequest, fmt.Errorf("%w: %q", ErrBadGame, req.Game))
	}
	s := h.games.NewGame(gt)
	return c.Status(fiber.StatusCreated).JSON(CreateResponse{
		GameID: s.ID,
		State:  stateToDTO(s.Snapshot()),
	})
}

func (h *Handler) handleState(c *fiber.Ctx) error {
	s, err := h.games.Get(c.Params("id"))
	if err != nil {
		return writeError(c, fiber.StatusNotFound, err)
	}
	return c.JSON(stateToDTO(s.Snapshot()))
}

func (h *Handler) handleMoves(c *fiber.Ctx) error {
	s, err := h.games.Get(c.Params("id"))
	if err != nil {
		return writeError(c, fiber.StatusNotFound, err)
	}
	from, ok := rules.ParseSquare(c.Query("from"))
	if !ok {
		return writeError(c, fiber.StatusBadRequest, fmt.Errorf("%w: %q", ErrBadSquare, c.Query("from")))
	}
	return c.JSON(MovesResponse{
		From:  from.String(),
		Moves: squaresToDTO(s.Destinations(from)),
	})
}

func (h *Handler) handleMove(c *fiber.Ctx) error {
	s, err := h.games.Get(c.Params("id"))
	if err != nil {
		return writeError(c, fiber.StatusNotFound, err)
	}
	var req MoveDTO
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, fmt.Errorf("bad json: %w", err))
	}
	snap, err := playMove(s, req)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err)
	}
	state := stateToDTO(snap)
	h.hub.broadcast(s.ID, newMessage(MessageState, state))
	return c.JSON(state)
}

func (h *Handler) handleUndo(c *fiber.Ctx) error {
	s, err := h.games.Get(c.Params("id"))
	if err != nil {
		return writeError(c, fiber.StatusNotFound, err)
	}
	req := UndoRequest{Steps: 1}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, fmt.Errorf("bad json: %w", err))
		}
	}
	resp := undoMoves(s, req)
	if resp.Undone > 0 {
		h.hub.broadcast(s.ID, newMessage(MessageState, resp.State))
	}
	return c.JSON(resp)
}

func (h *Handler) handleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.games.Delete(id); err != nil {
		return writeError(c, fiber.StatusNotFound, err)
	}
	h.hub.close(id, errorMessage(fmt.Errorf("%w: %s", ErrGameClosed, id)))
	return c.SendStatus(fiber.StatusNoContent)
}

func playMove(s *game.Session, req MoveDTO) (game.Snapshot, error) {
	from, ok := rules.ParseSquare(req.From)
	if !ok {
		return game.Snapshot{}, fmt.Errorf("%w: %q", ErrBadSquare, req.From)
	}
	to, ok := rules.ParseSquare(req.To)
	if !ok {
		return game.Snapshot{}, fmt.Errorf("%w: %q", ErrBadSquare, req.To)
	}
	return s.Move(from, to)
}

func undoMoves(s *game.Session, req UndoRequest) UndoResponse {
	steps := req.Steps
	if steps <= 0 {
		steps = 1
	}
	undone, snap := s.Undo(steps)
	return UndoResponse{Undone: undone, State: stateToDTO(snap)}
}

func writeError(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}
