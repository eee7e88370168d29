package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hearthside/chronicle/pkg/internal/http/exts"
	"github.com/hearthside/chronicle/pkg/internal/services"
)

// Groups come into being through an administrative action only; there is no
// end-user surface for creating them.
func createGroup(c *fiber.Ctx) error {
	var data struct {
		Slug        string `json:"slug" validate:"required,lowercase"`
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}
