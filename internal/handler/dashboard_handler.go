package handler

import (
	"time"

	"swiftpos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	stats service.StatsService
}

func NewDashboardHandler(stats service.StatsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// GetStats returns today's revenue, order count, items sold and the
// catalog-wide low-stock count.
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.stats.DailyStats(time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}

// GetRecentOrders lists the latest committed orders.
// GET /api/v1/orders/recent?limit=...
func (h *DashboardHandler) GetRecentOrders(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", service.DefaultRecentLimit)

	orders, err := h.stats.Recent(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch orders"})
	}
	return c.JSON(fiber.Map{
		"count": len(orders),
		"data":  orders,
	})
}
