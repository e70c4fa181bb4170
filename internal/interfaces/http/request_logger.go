package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nongyiding-api/pkg/logger"
)

const localLogger = "logger"

// RequestLogger deja el logger en c.Locals para los handlers y writeError.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localLogger, log)
		return c.Next()
	}
}

func requestLog(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(localLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}
