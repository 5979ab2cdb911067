package controller

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// statusFor maps engine and session errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrSessionNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrInvalidFEN), stderrors.Is(err, errors.ErrOutOfBounds):
		return fiber.StatusBadRequest
	case stderrors.Is(err, errors.ErrNoPiece), stderrors.Is(err, errors.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrSessionLimit):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
