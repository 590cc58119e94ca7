package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"swiftpos/internal/handler"
	"swiftpos/internal/middleware"
	"swiftpos/internal/model"
	"swiftpos/internal/repository"
	"swiftpos/internal/service"
	"swiftpos/internal/store"
	"swiftpos/internal/ws"
	"swiftpos/pkg/password"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Open the store and seed defaults exactly once per installation
	kv, err := store.OpenBolt(envStr("POS_DB_PATH", "swiftpos.db"))
	if err != nil {
		log.Fatal("Failed to open store: ", err)
	}
	defer kv.Close()

	seeded, err := store.SeedOnce(kv)
	if err != nil {
		log.Fatal("Failed to seed store: ", err)
	}
	if seeded {
		log.Println("Seeded default catalog and staff")
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(kv)
	cashierRepo := repository.NewCashierRepo(kv)
	orderRepo := repository.NewOrderRepo(kv)

	taxRate := envFloat("TAX_RATE", 0.10)
	lowStock := envInt("LOW_STOCK_THRESHOLD", 5)
	admin := service.AdminCredentials{
		Username: envStr("ADMIN_USERNAME", "admin"),
		Password: envStr("ADMIN_PASSWORD", "admin123"),
	}
	scheme := password.FromName(os.Getenv("PASSWORD_SCHEME"))

	catalogService := service.NewCatalogService(productRepo, wsHub)
	authService := service.NewAuthService(cashierRepo, scheme, admin, wsHub)
	checkoutService := service.NewCheckoutService(catalogService, orderRepo, wsHub)
	statsService := service.NewStatsService(orderRepo, productRepo, lowStock)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	checkoutHandler := handler.NewCheckoutHandler(catalogService, checkoutService, taxRate)
	cashierHandler := handler.NewCashierHandler(authService)
	dashHandler := handler.NewDashboardHandler(statsService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "SwiftPOS v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/admin/login", authHandler.AdminLogin)
	auth.Post("/cashier/login", authHandler.CashierLogin)
	auth.Post("/cashier/register", authHandler.Register)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(cashierRepo))

	// Catalog (any authenticated role can browse; mutation is admin-only)
	protected.Get("/products", catalogHandler.GetProducts)
	protected.Get("/products/barcode/:code", catalogHandler.GetByBarcode)
	protected.Post("/products", middleware.RequireRole(model.RoleAdmin), catalogHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.DeleteProduct)

	// Checkout (cashiers only)
	protected.Post("/checkout", middleware.RequireRole(model.RoleCashier), checkoutHandler.Checkout)

	// Ledger and dashboard (admin only)
	protected.Get("/orders/recent", middleware.RequireRole(model.RoleAdmin), dashHandler.GetRecentOrders)
	protected.Get("/dashboard/stats", middleware.RequireRole(model.RoleAdmin), dashHandler.GetStats)

	// Staff management (admin only)
	protected.Get("/cashiers", middleware.RequireRole(model.RoleAdmin), cashierHandler.GetCashiers)
	protected.Post("/cashiers", middleware.RequireRole(model.RoleAdmin), cashierHandler.CreateCashier)
	protected.Put("/cashiers/:id/password", middleware.RequireRole(model.RoleAdmin), cashierHandler.ResetPassword)
	protected.Delete("/cashiers/:id", middleware.RequireRole(model.RoleAdmin), cashierHandler.DeleteCashier)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := envStr("PORT", "3000")
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("Warning: invalid %s=%q, using %v", key, v, fallback)
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Warning: invalid %s=%q, using %v", key, v, fallback)
	}
	return fallback
}
