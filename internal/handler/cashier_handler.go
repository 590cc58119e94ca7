package handler

import (
	"errors"

	"swiftpos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CashierHandler covers the admin's staff management panel. Account
// creation reuses the same registration path as cashier self-signup.
type CashierHandler struct {
	authService service.AuthService
}

func NewCashierHandler(authService service.AuthService) *CashierHandler {
	return &CashierHandler{authService: authService}
}

// GetCashiers lists staff accounts.
// GET /api/v1/cashiers
func (h *CashierHandler) GetCashiers(c *fiber.Ctx) error {
	cashiers, err := h.authService.ListCashiers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(cashiers)
}

// CreateCashier adds a staff account.
// POST /api/v1/cashiers
func (h *CashierHandler) CreateCashier(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	cashier, err := h.authService.Register(req.Username, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrUsernameTaken):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
	}
	return c.Status(201).JSON(fiber.Map{"message": "Cashier created", "data": cashier})
}

// ResetPasswordRequest carries the replacement credential.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPassword sets a new password for a cashier.
// PUT /api/v1/cashiers/:id/password
func (h *CashierHandler) ResetPassword(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid cashier ID"})
	}

	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	cashier, err := h.authService.ResetPassword(id, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrCashierNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
	}
	return c.JSON(fiber.Map{"message": "Password updated", "data": cashier})
}

// DeleteCashier removes a staff account.
// DELETE /api/v1/cashiers/:id
func (h *CashierHandler) DeleteCashier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid cashier ID"})
	}

	if err := h.authService.RemoveCashier(id); err != nil {
		if errors.Is(err, service.ErrCashierNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Cashier removed"})
}
