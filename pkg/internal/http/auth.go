package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hearthside/chronicle/pkg/internal/services"
	"github.com/spf13/viper"
)

// ContextMiddleware resolves the viewer from a bearer token or session cookie
// minted by the identity service and stashes the account in locals. Missing or
// invalid tokens just leave the request anonymous.
func ContextMiddleware(c *fiber.Ctx) error {
	var tk string
	if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
		tk = strings.TrimPrefix(header, "Bearer ")
	} else {
		tk = c.Cookies("authorization")
	}
	if len(tk) == 0 {
		return c.Next()
	}

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tk, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil || !token.Valid {
		return c.Next()
	}

	if user, err := services.GetAccount(claims.Subject); err == nil {
		c.Locals("user", user)
	}

	return c.Next()
}
