package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ichaoui56/service-stock2/internal/model"
	"github.com/ichaoui56/service-stock2/internal/repository"
	"github.com/ichaoui56/service-stock2/pkg/jwt"
)

const identityKey = "identity"

// RequireAuth validates the Bearer token, checks it against the user's current
// token version, and stores the resolved identity for downstream handlers.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "error": "Missing authorization token",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "error": "Invalid authorization format. Use: Bearer <token>",
			})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "error": "Invalid or expired token",
			})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "error": "User not found",
			})
		}
		if user.TokenVersion != claims.TokenVersion {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "error": "Session expired (logged in on another device)",
			})
		}

		c.Locals(identityKey, model.Identity{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
			Role:   user.Role,
		})
		return c.Next()
	}
}

// IdentityFromCtx returns the identity stored by RequireAuth.
func IdentityFromCtx(c *fiber.Ctx) model.Identity {
	if id, ok := c.Locals(identityKey).(model.Identity); ok {
		return id
	}
	return model.Identity{}
}
