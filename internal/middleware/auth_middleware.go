package middleware

import (
	"strings"

	"swiftpos/internal/model"
	"swiftpos/internal/repository"
	"swiftpos/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sessionKey = "session"

// RequireAuth validates the bearer token and stores the session in the
// request context. Cashier sessions are checked against the cashier
// collection so a removed account cannot keep using an old token.
func RequireAuth(cashiers repository.CashierRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		session := &model.Session{
			Role:     model.Role(claims.Role),
			Username: claims.Username,
			Name:     claims.Name,
			LoggedAt: claims.LoggedAt,
		}

		if session.Role == model.RoleCashier {
			id, err := uuid.Parse(claims.CashierID)
			if err != nil {
				return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
			}
			cashier, err := cashiers.FindByID(id)
			if err != nil || cashier == nil {
				return c.Status(401).JSON(fiber.Map{"error": "Cashier account no longer exists"})
			}
			session.CashierID = cashier.ID
		}

		c.Locals(sessionKey, session)
		return c.Next()
	}
}

// RequireRole gates a route to one role. It runs after RequireAuth.
func RequireRole(role model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := SessionFromCtx(c)
		if session == nil || session.Role != role {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden: requires " + string(role) + " role"})
		}
		return c.Next()
	}
}

// SessionFromCtx returns the session set by RequireAuth, or nil.
func SessionFromCtx(c *fiber.Ctx) *model.Session {
	session, _ := c.Locals(sessionKey).(*model.Session)
	return session
}
