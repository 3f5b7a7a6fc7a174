package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"ajir/internal/config"
	"ajir/internal/http/handlers"
	applog "ajir/internal/log"
	"ajir/internal/metrics"
	"ajir/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// OpenDB runs the schema migration and the admin seed before the
	// listener starts accepting traffic.
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	var m *metrics.AppMetrics
	if cfg.OTELEndpoint != "" {
		ctx := context.Background()
		appMetrics, shutdown, err := metrics.Init(ctx, cfg.OTELEndpoint, cfg.OTELServiceName)
		if err != nil {
			log.Printf("[warn] metrics disabled: %v", err)
		} else {
			m = appMetrics
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(sctx); err != nil {
					log.Printf("[warn] metrics shutdown: %v", err)
				}
			}()
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 << 20, // the frontend posts base64 product images
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
		},
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(m.Middleware())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))

	// Credential endpoints get a tighter limiter.
	credLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.credentials.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many attempts. Please try again later."})
		},
	})

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, m)

	app.Post("/signup", credLimiter, deps.AuthHandler.Signup)
	app.Post("/login", credLimiter, deps.AuthHandler.Login)
	app.Post("/admin-login", credLimiter, deps.AuthHandler.AdminLogin)

	app.Post("/admin/add-product", deps.AdminHandler.AddProduct)
	app.Put("/admin/update-product/:id", deps.AdminHandler.UpdateProduct)
	app.Delete("/admin/delete-product/:id", deps.AdminHandler.DeleteProduct)

	app.Get("/products", deps.ProductHandler.List)
	app.Get("/products/category/:category", deps.ProductHandler.ByCategory)
	app.Get("/products/:id", deps.ProductHandler.Get)

	app.Post("/order", deps.OrderHandler.Place)
	app.Get("/orders/:userId", deps.OrderHandler.History)

	app.Post("/payment/complete", deps.PaymentHandler.Complete)

	app.Get("/wishlist/:userId", deps.WishlistHandler.List)
	app.Post("/wishlist/toggle", deps.WishlistHandler.Toggle)
	app.Delete("/wishlist/:userId/:productId", deps.WishlistHandler.Remove)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
