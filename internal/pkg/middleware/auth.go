package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/runtix/runtix/internal/pkg/token"
	"github.com/runtix/runtix/internal/pkg/usercontext"
)

// JWTAuthMiddleware authenticates requests carrying a Bearer access token.
// Missing token is 401, invalid or expired token is 403 (distinct so clients
// can tell "log in" from "re-login").
func JWTAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := extractBearerToken(c)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Access denied. No token provided."})
		}

		claims, err := token.Parse(raw, secret)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Invalid token"})
		}

		userCtx := usercontext.UserContext{
			UserID:     claims.UserID,
			Email:      claims.Email,
			Role:       claims.Role,
			IsLoggedIn: true,
		}
		c.Locals(usercontext.KeyUserContext, userCtx)
		c.Locals(usercontext.KeyUserID, claims.UserID)
		c.Locals(usercontext.KeyUserEmail, claims.Email)
		c.Locals(usercontext.KeyIsAdmin, claims.Role == "admin")

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return auth
}
