package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hearthside/chronicle/pkg/internal/database"
	"github.com/hearthside/chronicle/pkg/internal/http/exts"
	"github.com/hearthside/chronicle/pkg/internal/services"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// getIndex serves the global post listing through the shared page cache.
// Within the TTL window every viewer gets the same snapshot bytes.
func getIndex(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	if data, hit := services.GetCachedIndexPage(page); hit {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Send(data)
	}

	items, paginator, err := services.ListPostPage(database.C, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	payload, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(fiber.Map{
		"template":  "index",
		"page":      items,
		"paginator": paginator,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	services.SetCachedIndexPage(page, payload)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(payload)
}

func getPost(c *fiber.Ctx) error {
	username := c.Params("username")
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(username, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	comments, err := services.ListPostComments(item.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"template":   "post",
		"profile":    item.Author,
		"post":       item,
		"post_count": services.CountAccountPosts(item.AuthorID),
		"comments":   comments,
	})
}

// getNewPost shows the submission form along with the selectable groups.
func getNewPost(c *fiber.Ctx) error {
	if _, ok := authedUser(c); !ok {
		return redirectToLogin(c)
	}

	groups, err := services.ListGroup(100, 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"template": "new",
		"groups":   groups,
	})
}

type postForm struct {
	Text    string `json:"text" form:"text" validate:"required"`
	GroupID *uint  `json:"group_id" form:"group_id"`
}

// parsePostImage pulls the optional multipart image and stores it away.
// Requests without an image (or without a multipart body at all) pass through.
func parsePostImage(c *fiber.Ctx) (*string, error) {
	header, err := c.FormFile("image")
	if err != nil || header == nil {
		return nil, nil
	}

	path, err := services.SaveUpload(header)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func createPost(c *fiber.Ctx) error {
	user, ok := authedUser(c)
	if !ok {
		return redirectToLogin(c)
	}

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"template": "new",
			"errors":   err.Error(),
		})
	}

	image, err := parsePostImage(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if _, err := services.NewPost(user, data.Text, data.GroupID, image); err != nil {
		if errors.Is(err, services.ErrTextRequired) || errors.Is(err, services.ErrGroupNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"template": "new",
				"errors":   err.Error(),
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/", fiber.StatusFound)
}

func editPost(c *fiber.Ctx) error {
	user, ok := authedUser(c)
	if !ok {
		return redirectToLogin(c)
	}

	username := c.Params("username")
	id, _ := c.ParamsInt("postId", 0)

	// No eager validation here: the ownership check must win over field
	// validation, and both live in the service.
	var data postForm
	_ = c.BodyParser(&data)

	image, err := parsePostImage(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	_, outcome, err := services.EditPost(user, username, uint(id), data.Text, data.GroupID, image)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		if errors.Is(err, services.ErrTextRequired) || errors.Is(err, services.ErrGroupNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"template": "new",
				"errors":   err.Error(),
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if outcome == services.EditDenied {
		// Non-owners are bounced back to the post view without touching anything.
		log.Debug().
			Str("viewer", user.Name).
			Str("owner", username).
			Msg("Denied an edit attempt on a foreign post.")
	}

	return c.Redirect(postPath(username, uint(id)), fiber.StatusFound)
}
