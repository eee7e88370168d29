package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hearthside/chronicle/pkg/internal/services"
)

func getFollowIndex(c *fiber.Ctx) error {
	user, ok := authedUser(c)
	if !ok {
		return redirectToLogin(c)
	}

	page := c.QueryInt("page", 1)

	items, paginator, err := services.ListFollowedPosts(user, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"template":  "follow",
		"page":      items,
		"paginator": paginator,
	})
}
