package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hearthside/chronicle/pkg/internal/http/exts"
	"github.com/hearthside/chronicle/pkg/internal/models"
	"github.com/hearthside/chronicle/pkg/internal/services"
)

// upsertAccount syncs an externally registered user into the local mirror.
func upsertAccount(c *fiber.Ctx) error {
	var data struct {
		Name   string `json:"name" validate:"required"`
		Nick   string `json:"nick"`
		Avatar string `json:"avatar"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.UpsertAccount(models.Account{
		Name:   data.Name,
		Nick:   data.Nick,
		Avatar: data.Avatar,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(account)
}
