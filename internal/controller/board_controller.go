// Package controller holds the HTTP and websocket handlers of the board
// server.
package controller

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/middleware"
	"github.com/lgbarn/chessrules-go/internal/session"
	"github.com/lgbarn/chessrules-go/internal/ws"
)

// BoardController serves the REST routes over a session store.
type BoardController struct {
	store *session.Store
	cfg   *config.Config
}

// NewBoardController creates a BoardController for store.
func NewBoardController(store *session.Store, cfg *config.Config) *BoardController {
	return &BoardController{store: store, cfg: cfg}
}

// CreateBoard starts a session from the standard position or from the
// placement given in the fen query parameter.
func (bc *BoardController) CreateBoard(c *fiber.Ctx) error {
	var board *chess.Board
	if fen := c.Query("fen"); fen != "" {
		b, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			return errorResponse(c, err)
		}
		board = b
	}

	s, err := bc.store.Create(board)
	if err != nil {
		return errorResponse(c, err)
	}
	bc.cfg.Logf(1, "created board %s", s.ID)

	return c.Status(fiber.StatusCreated).JSON(s.Snapshot())
}

// GetBoard returns the current snapshot, or 304 when If-None-Match carries
// its ETag.
func (bc *BoardController) GetBoard(c *fiber.Ctx) error {
	snap := middleware.Session(c).Snapshot()
	etag := snap.ETag()
	c.Set(fiber.HeaderETag, etag)
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	return c.JSON(snap)
}

// GetMoves returns the legal destinations of the piece on ?file=&rank=, or
// every legal move of ?color= when no square is given.
func (bc *BoardController) GetMoves(c *fiber.Ctx) error {
	s := middleware.Session(c)

	if c.Query("file") == "" && c.Query("rank") == "" {
		colour, ok := parseColor(c.Query("color", "white"))
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("unknown colour %q", c.Query("color")),
			})
		}
		var moves []chess.MovePair
		if err := s.With(func(b *chess.Board) error {
			moves = engine.LegalMovesForColor(b, colour)
			return nil
		}); err != nil {
			return errorResponse(c, err)
		}
		if moves == nil {
			moves = []chess.MovePair{}
		}
		return c.JSON(fiber.Map{
			"color": colour.String(),
			"moves": moves,
		})
	}

	sq := chess.Sq(c.QueryInt("file", -1), c.QueryInt("rank", -1))
	if sq.OffBoard() {
		return errorResponse(c, fmt.Errorf("square %s: %w", sq, errors.ErrOutOfBounds))
	}
	moves, err := s.LegalMoves(sq)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(ws.Moves{From: sq, Moves: moves})
}

// MakeMove applies a {from, to} move and returns the new snapshot.
func (bc *BoardController) MakeMove(c *fiber.Ctx) error {
	s := middleware.Session(c)

	var move chess.MovePair
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body: " + err.Error(),
		})
	}

	snap, err := s.Move(move.From, move.To)
	if err != nil {
		bc.cfg.Logf(2, "board %s: rejected %s -> %s: %v", s.ID, move.From, move.To, err)
		return errorResponse(c, err)
	}
	bc.cfg.Logf(1, "board %s: %s -> %s", s.ID, move.From, move.To)

	return c.JSON(snap)
}

// DeleteBoard removes the session and closes its websocket subscribers.
func (bc *BoardController) DeleteBoard(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := bc.store.Delete(id); err != nil {
		return errorResponse(c, err)
	}
	bc.cfg.Logf(1, "deleted board %s", id)
	return c.SendStatus(fiber.StatusNoContent)
}

// Health reports liveness and the number of open sessions.
func (bc *BoardController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"sessions": bc.store.Len(),
	})
}

func parseColor(s string) (chess.Color, bool) {
	switch strings.ToLower(s) {
	case "white", "w":
		return chess.White, true
	case "black", "b":
		return chess.Black, true
	}
	return chess.White, false
}
