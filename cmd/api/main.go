package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/ichaoui56/service-stock2/internal/handler"
	"github.com/ichaoui56/service-stock2/internal/middleware"
	"github.com/ichaoui56/service-stock2/internal/model"
	"github.com/ichaoui56/service-stock2/internal/repository"
	"github.com/ichaoui56/service-stock2/internal/service"
	"github.com/ichaoui56/service-stock2/internal/ws"
	"github.com/ichaoui56/service-stock2/pkg/database"
	"github.com/ichaoui56/service-stock2/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}
	logger.New(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Sale{},
		&model.Purchase{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	hub := ws.NewHub()
	go hub.Run()

	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	userRepo := repository.NewUserRepo(db)

	invService := service.NewInventoryService(productRepo, categoryRepo, saleRepo, purchaseRepo, hub)
	ledgerService := service.NewLedgerService(productRepo, saleRepo, purchaseRepo, db, hub)
	dashService := service.NewDashboardService(productRepo, categoryRepo, saleRepo, purchaseRepo)
	authService := service.NewAuthService(userRepo)
	reportService := service.NewReportService(saleRepo, purchaseRepo)

	invHandler := handler.NewInventoryHandler(invService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)
	reportHandler := handler.NewReportHandler(reportService)

	app := fiber.New(fiber.Config{
		AppName: "Service Stock v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.SignUp)
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Get("/products", invHandler.GetProducts)
	protected.Get("/products/available", invHandler.GetAvailableProducts)
	protected.Post("/products", invHandler.CreateProduct)
	protected.Put("/products/:id", invHandler.UpdateProduct)
	protected.Delete("/products/:id", invHandler.DeleteProduct)

	protected.Get("/categories", invHandler.GetCategories)
	protected.Post("/categories", invHandler.CreateCategory)
	protected.Put("/categories/:id", invHandler.UpdateCategory)
	protected.Delete("/categories/:id", invHandler.DeleteCategory)

	protected.Get("/sales", ledgerHandler.GetSales)
	protected.Post("/sales", ledgerHandler.CreateSale)
	protected.Get("/purchases", ledgerHandler.GetPurchases)
	protected.Post("/purchases", ledgerHandler.CreatePurchase)

	protected.Get("/dashboard", dashHandler.GetDashboard)
	protected.Get("/search", dashHandler.GlobalSearch)
	protected.Get("/reports/export", reportHandler.ExportTransactions)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register <- c
		defer func() { hub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
