package handler

import (
	"errors"

	"swiftpos/internal/middleware"
	"swiftpos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	catalog  service.CatalogService
	checkout service.CheckoutService
	taxRate  float64
}

func NewCheckoutHandler(catalog service.CatalogService, checkout service.CheckoutService, taxRate float64) *CheckoutHandler {
	return &CheckoutHandler{catalog: catalog, checkout: checkout, taxRate: taxRate}
}

// CheckoutRequest is the submitted cart: product ids with quantities.
type CheckoutRequest struct {
	Items []CheckoutLine `json:"items"`
}

type CheckoutLine struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// Checkout commits a cart as an order.
// POST /api/v1/checkout
//
// The cart is rebuilt server-side through the same add/clamp rules the
// POS applies, so quantity invariants hold regardless of what the
// client sends.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	cart := service.NewCart(h.taxRate)
	for _, line := range req.Items {
		id, err := uuid.Parse(line.ProductID)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID: " + line.ProductID})
		}
		product, err := h.catalog.Get(id)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
		if product == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown product: " + line.ProductID})
		}
		cart.Add(*product)
		if line.Qty > 1 {
			cart.SetQty(product.ID, line.Qty)
		}
	}

	session := middleware.SessionFromCtx(c)
	if session == nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing session"})
	}

	order, err := h.checkout.Checkout(cart, session)
	if err != nil {
		var short *service.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &short):
			return c.Status(409).JSON(fiber.Map{
				"error":    short.Error(),
				"products": short.Products,
			})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
	}

	return c.Status(201).JSON(fiber.Map{"message": "Payment successful. Order saved.", "data": order})
}
