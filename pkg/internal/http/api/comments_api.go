package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hearthside/chronicle/pkg/internal/services"
	"github.com/rs/zerolog/log"
)

func addComment(c *fiber.Ctx) error {
	user, ok := authedUser(c)
	if !ok {
		return redirectToLogin(c)
	}

	username := c.Params("username")
	id, _ := c.ParamsInt("postId", 0)

	post, err := services.GetPost(username, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Text string `json:"text" form:"text"`
	}
	_ = c.BodyParser(&data)

	// An empty submission falls through to the same redirect with nothing
	// created; the outcome records the skip.
	_, outcome, err := services.NewComment(user, post, data.Text)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Debug().
		Uint("post", post.ID).
		Str("outcome", string(outcome)).
		Msg("Handled a comment submission.")

	return c.Redirect(postPath(username, post.ID), fiber.StatusFound)
}
