package admin

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL, gate)
	{
		admin.Put("/accounts", upsertAccount)
		admin.Post("/groups", createGroup)
		admin.Delete("/cache/index", flushIndexCache)
	}
}

func gate(c *fiber.Ctx) error {
	secret := viper.GetString("security.admin_token")
	given := c.Get("X-Admin-Token")
	if len(secret) == 0 || subtle.ConstantTimeCompare([]byte(secret), []byte(given)) != 1 {
		return fiber.NewError(fiber.StatusForbidden, "admin token mismatch")
	}
	return c.Next()
}
