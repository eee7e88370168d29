package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hearthside/chronicle/pkg/internal/database"
	"github.com/hearthside/chronicle/pkg/internal/services"
	"github.com/rs/zerolog/log"
)

func getProfile(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	profile, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tx := services.FilterPostWithAuthor(database.C, profile.ID)
	items, paginator, err := services.ListPostPage(tx, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var following bool
	if user, ok := authedUser(c); ok {
		following = services.IsFollowing(user.ID, profile.ID)
	}

	return c.JSON(fiber.Map{
		"template":   "profile",
		"profile":    profile,
		"page":       items,
		"paginator":  paginator,
		"post_count": paginator.Count,
		"following":  following,
	})
}

// Both follow endpoints redirect to the profile whatever happened; the
// outcome only shows up in the logs.
func followProfile(c *fiber.Ctx) error {
	user, ok := authedUser(c)
	if !ok {
		return redirectToLogin(c)
	}

	target, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	outcome, err := services.FollowAuthor(user, target)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Debug().
		Uint("user", user.ID).
		Uint("author", target.ID).
		Str("outcome", string(outcome)).
		Msg("Handled a follow request.")

	return c.Redirect(profilePath(target.Name), fiber.StatusFound)
}

func unfollowProfile(c *fiber.Ctx) error {
	user, ok := authedUser(c)
	if !ok {
		return redirectToLogin(c)
	}

	target, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	outcome, err := services.UnfollowAuthor(user, target)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Debug().
		Uint("user", user.ID).
		Uint("author", target.ID).
		Str("outcome", string(outcome)).
		Msg("Handled an unfollow request.")

	return c.Redirect(profilePath(target.Name), fiber.StatusFound)
}
