package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hearthside/chronicle/pkg/internal/services"
)

func flushIndexCache(c *fiber.Ctx) error {
	if err := services.FlushIndexPages(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
