package api

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/hearthside/chronicle/pkg/internal/models"
	"github.com/spf13/viper"
)

func MapAPIs(app *fiber.App) {
	app.Get("/", getIndex)
	app.Get("/groups/:slug", getGroupPosts)
	app.Get("/users/:username", getProfile)
	app.Get("/users/:username/posts/:postId", getPost)
	app.Get("/feed", getFollowIndex)
	app.Get("/posts/new", getNewPost)

	app.Post("/posts", createPost)
	app.Post("/users/:username/posts/:postId", editPost)
	app.Post("/users/:username/posts/:postId/comments", addComment)
	app.Post("/users/:username/follow", followProfile)
	app.Post("/users/:username/unfollow", unfollowProfile)
}

func authedUser(c *fiber.Ctx) (models.Account, bool) {
	user, ok := c.Locals("user").(models.Account)
	return user, ok
}

// redirectToLogin sends unauthenticated callers to the identity service
// instead of erroring out.
func redirectToLogin(c *fiber.Ctx) error {
	target := viper.GetString("security.login_redirect")
	if len(target) == 0 {
		target = "/auth/login"
	}
	return c.Redirect(
		fmt.Sprintf("%s?next=%s", target, url.QueryEscape(c.OriginalURL())),
		fiber.StatusFound,
	)
}

func postPath(username string, id uint) string {
	return fmt.Sprintf("/users/%s/posts/%d", username, id)
}

func profilePath(username string) string {
	return fmt.Sprintf("/users/%s", username)
}
