package middleware

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// SessionKey is the fiber.Locals key holding the *session.Session.
const SessionKey = "session"

// LoadSession resolves the :id route parameter to a live session and stores
// it in locals. Unknown IDs get a 404.
func LoadSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := store.Get(c.Params("id"))
		if err != nil {
			status := fiber.StatusInternalServerError
			if stderrors.Is(err, errors.ErrSessionNotFound) {
				status = fiber.StatusNotFound
			}
			return c.Status(status).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		c.Locals(SessionKey, s)
		return c.Next()
	}
}

// Session returns the session stored by LoadSession, or nil.
func Session(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(SessionKey).(*session.Session)
	return s
}

// WebSocketUpgrade ensures that requests to WebSocket endpoints are valid
// WebSocket connection attempts.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}
}
