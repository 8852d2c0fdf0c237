package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

type Options struct {
	// WebDir, when set, is served as static files under /.
	WebDir string
	// Quiet drops the per-request log lines.
	Quiet bool
}

// NewApp mounts the REST routes under /api/game and the live channel under
// /ws/game/:id.
func NewApp(h *Handler, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "duelboard",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	if !opts.Quiet {
		app.Use(logger.New())
	}

	api := app.Group("/api/game")
	api.Post("/create", h.handleCreate)
	api.Get("/:id", h.handleState)
	api.Get("/:id/moves", h.handleMoves)
	api.Post("/:id/move", h.handleMove)
	api.Post("/:id/undo", h.handleUndo)
	api.Delete("/:id", h.handleDelete)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/game/:id", websocket.New(h.handleSocket, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	if opts.WebDir != "" {
		app.Static("/", opts.WebDir)
	}
	return app
}
