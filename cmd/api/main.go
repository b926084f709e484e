package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajshree/shopbill-api/internal/application/service"
	"github.com/rajshree/shopbill-api/internal/config"
	"github.com/rajshree/shopbill-api/internal/domain/entity"
	"github.com/rajshree/shopbill-api/internal/infrastructure/database"
	"github.com/rajshree/shopbill-api/internal/infrastructure/repository"
	"github.com/rajshree/shopbill-api/internal/presentation/http/handler"
	"github.com/rajshree/shopbill-api/internal/presentation/http/routes"
	"github.com/rajshree/shopbill-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	billRepo := repository.NewBillRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Purge expired idempotency keys hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Failed to purge expired idempotency keys: %v", err)
			}
		}
	}()

	// Shop identity printed on receipts, labels and PDF bills
	shopHeader := entity.LabelHeader{
		ShopName: cfg.Shop.Name,
		Address:  cfg.Shop.Address,
		Contact:  cfg.Shop.Contact,
		GSTIN:    cfg.Shop.GSTIN,
	}

	// Initialize services
	productService := service.NewProductService(productRepo)
	billNumbers := service.NewBillNumberGenerator(time.Now().UnixNano())
	billingService := service.NewBillingService(billRepo, productRepo, billNumbers)
	pdfService := service.NewPDFService(shopHeader)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, billRepo, shopHeader, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Product: handler.NewProductHandler(productService),
		Billing: handler.NewBillingHandler(billingService, pdfService),
		Printer: handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
