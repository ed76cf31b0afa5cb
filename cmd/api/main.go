package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/calldesk-team/call-insight/internal/adapter/handler"
	"github.com/calldesk-team/call-insight/internal/adapter/repository"
	"github.com/calldesk-team/call-insight/internal/usecase/analysis"
	pkgai "github.com/calldesk-team/call-insight/pkg/ai"
	"github.com/calldesk-team/call-insight/pkg/config"
	pkgvalidator "github.com/calldesk-team/call-insight/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Register HTML renderer for the form and result pages
	e.Renderer = handler.NewTemplateRenderer()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	e.Use(middleware.RequestID())

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize AI components
	log.Println("🤖 Initializing AI components...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	log.Printf("✅ Groq model: %s", groqClient.Model())

	// Initialize the CSV analysis log
	log.Printf("📄 Analysis log: %s", cfg.Log.CSVFile)
	analysisLog := repository.NewCSVAnalysisLog(cfg.Log.CSVFile)

	// Initialize analysis service and handler
	analysisService := analysis.NewService(groqClient, analysisLog, logger)
	analyzeController := handler.NewAnalyzeController(analysisService, cfg.Log.CSVFile, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, analyzeController)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.ServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
