package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-analyzer/internal/catalog"
	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// Room for the other form fields on top of the résumé itself.
const formOverhead = 1 << 20

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	skillCatalog, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("❌ Failed to load skill catalog: %v", err)
	}
	log.Printf("✅ Skill catalog loaded (%d organizations)\n", len(skillCatalog.Organizations()))

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	historyRepo := repositories.NewHistoryRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)
	pdfParser := services.NewPDFParserService(cfg.Storage.ExtractTimeout)
	evaluatorService := services.NewEvaluatorService(skillCatalog)
	log.Println("✅ Services initialized successfully")

	// Gemini is optional; without a key only the catalog objective is returned.
	var geminiService services.GeminiService
	if cfg.Gemini.APIKey != "" {
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("ℹ️  GEMINI_API_KEY not set, tailored objectives disabled")
	}

	analyzerService := services.NewAnalyzerService(
		historyRepo,
		evaluatorService,
		pdfParser,
		geminiService,
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, uploadService)
	historyHandler := handlers.NewHistoryHandler(analyzerService)
	catalogHandler := handlers.NewCatalogHandler(skillCatalog)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + formOverhead,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Get("/companies", catalogHandler.HandleListCompanies)
	api.Get("/companies/:company/roles", catalogHandler.HandleListRoles)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Get("/history", historyHandler.HandleListHistory)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/companies",
				"GET /api/v1/companies/:company/roles",
				"POST /api/v1/analyze",
				"GET /api/v1/history",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
