package main

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"marketplace_backend/config"
	"marketplace_backend/handlers"
	"marketplace_backend/middleware"
	"marketplace_backend/models"
	"marketplace_backend/store"
	"marketplace_backend/utils"
)

func main() {
	cfg := config.LoadConfig()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	db, err := store.Open(cfg.DatabaseURL, log)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if os.Getenv("RESET_DB") == "true" {
		if err := config.ResetAndMigrate(db.DB(), log); err != nil {
			log.Error("Failed to reset database", "error", err)
			os.Exit(1)
		}
	} else {
		if err := config.Migrate(db.DB(), log); err != nil {
			log.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "Marketplace Backend",
		ServerHeader: "Marketplace Backend Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			// Send custom error page
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app, cfg)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(models.SuccessResponse("API is healthy", nil, nil))
	})

	setupRoutes(app, db)

	middleware.SetupErrorHandler(app)

	log.Info("Server starting", "host", cfg.HOST, "port", cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func setupRoutes(app *fiber.App, s store.Store) {
	authHandler := handlers.NewAuthHandler(s)
	sellerHandler := handlers.NewSellerHandler(s)
	productHandler := handlers.NewProductHandler(s)
	transactionHandler := handlers.NewTransactionHandler(s)
	categoryHandler := handlers.NewCategoryHandler(s)
	uploadHandler := handlers.NewUploadHandler()

	api := app.Group("/api")

	// Accounts & auth
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/accounts", authHandler.GetAccounts)
	api.Get("/me", utils.AuthMiddleware, authHandler.Me)

	// Sellers
	api.Post("/add_seller", sellerHandler.AddSeller)
	api.Get("/sellers", sellerHandler.GetSellers)
	api.Get("/sellers/:id", sellerHandler.GetSeller)
	api.Get("/sellers/:id/products", sellerHandler.GetSellerProducts)

	// Products
	api.Get("/products", productHandler.GetAllProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Get("/categories", categoryHandler.GetCategories)

	// Transactions
	api.Post("/transactions", transactionHandler.CreateTransaction)
	api.Get("/transactions", transactionHandler.GetTransactions)

	// Uploads
	api.Post("/upload", uploadHandler.UploadImage)
	app.Static("/uploads", "./uploads")
}
