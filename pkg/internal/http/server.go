package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	pkg "github.com/hearthside/chronicle/pkg/internal"
	"github.com/hearthside/chronicle/pkg/internal/http/admin"
	"github.com/hearthside/chronicle/pkg/internal/http/api"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Server struct {
	app *fiber.App
}

func NewServer() *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Chronicle",
		AppName:               "Chronicle v" + pkg.AppVersion,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             50 * 1024 * 1024,
		ErrorHandler:          errorHandler,
	})

	app.Use(requestLogger)
	app.Use(ContextMiddleware)

	api.MapAPIs(app)
	admin.MapControllers(app, "/api/admin")

	return &Server{app}
}

// App exposes the underlying fiber instance for in-process tests.
func (v *Server) App() *fiber.App {
	return v.app
}

func (v *Server) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting http server.")
	}
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Debug().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("Handled a http request.")
	return err
}

// errorHandler keeps the two error page contracts: not-found echoes the
// requested path, anything else renders the generic failure page.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).JSON(fiber.Map{
			"template": "misc/404",
			"path":     c.Path(),
			"message":  err.Error(),
		})
	}

	return c.Status(code).JSON(fiber.Map{
		"template": "misc/500",
		"message":  err.Error(),
	})
}
