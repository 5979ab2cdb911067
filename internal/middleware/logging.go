// Package middleware holds the fiber handlers that run ahead of the
// controllers.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// RequestLogger logs each request at verbosity 2.
func RequestLogger(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		cfg.Logf(2, "%s %s -> %d (%s)", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
