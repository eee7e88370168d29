package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hearthside/chronicle/pkg/internal/database"
	"github.com/hearthside/chronicle/pkg/internal/services"
)

func getGroupPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tx := services.FilterPostWithGroup(database.C, group.ID)
	items, paginator, err := services.ListPostPage(tx, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"template":  "group",
		"group":     group,
		"page":      items,
		"paginator": paginator,
	})
}
