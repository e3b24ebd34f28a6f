package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/somvi/backend/internal/application/catalog"
	crmapp "github.com/somvi/backend/internal/application/crm"
	partnerapp "github.com/somvi/backend/internal/application/partner"
	reportapp "github.com/somvi/backend/internal/application/report"
	rfqapp "github.com/somvi/backend/internal/application/rfq"
	"github.com/somvi/backend/internal/infrastructure/config"
	"github.com/somvi/backend/internal/infrastructure/event"
	"github.com/somvi/backend/internal/infrastructure/export"
	"github.com/somvi/backend/internal/infrastructure/logger"
	"github.com/somvi/backend/internal/infrastructure/notify"
	"github.com/somvi/backend/internal/infrastructure/persistence"
	"github.com/somvi/backend/internal/interfaces/http/handler"
	"github.com/somvi/backend/internal/interfaces/http/middleware"
	"github.com/somvi/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting SOMVI Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection with query logging through zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, gormLogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	rfqRepo := persistence.NewGormRFQRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	materialRepo := persistence.NewGormMaterialRepository(db.DB)
	offerRepo := persistence.NewGormMaterialSupplierRepository(db.DB)
	leadRepo := persistence.NewGormLeadRepository(db.DB)
	submissionStore := persistence.NewGormSubmissionStore(db.DB)

	// Initialize application services
	rfqService := rfqapp.NewRFQService(rfqRepo, clientRepo, submissionStore, log)
	clientService := partnerapp.NewClientService(clientRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	materialService := catalogapp.NewMaterialService(materialRepo, offerRepo)
	leadService := crmapp.NewLeadService(leadRepo)
	reportService := reportapp.NewReportService(rfqRepo)

	// Event bus: submitted RFQs trigger the WhatsApp confirmation link
	eventBus := event.NewInMemoryEventBus(log)
	linkBuilder := notify.NewWhatsAppLinkBuilder(cfg.Company.Name)
	eventBus.Subscribe(notify.NewRFQSubmittedHandler(clientRepo, linkBuilder, log))
	rfqService.SetEventPublisher(eventBus)

	ctx := context.Background()
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Initialize HTTP handlers
	company := export.CompanyInfo{
		Name:     cfg.Company.Name,
		WhatsApp: cfg.Company.WhatsApp,
		Currency: cfg.Company.Currency,
	}
	rfqHandler := handler.NewRFQHandler(rfqService, company)
	clientHandler := handler.NewClientHandler(clientService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	materialHandler := handler.NewMaterialHandler(materialService)
	leadHandler := handler.NewLeadHandler(leadService)
	reportHandler := handler.NewReportHandler(reportService, cfg.Company.Currency)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version)

	// Setup Gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware chain order matters:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Quote request workflow. Submission is the public entry point the
	// website form posts to, so it carries its own stricter limiter.
	submitLimiter := middleware.NewRateLimiter(cfg.HTTP.SubmitRateLimitRequests, cfg.HTTP.RateLimitWindow)
	rfqRoutes := router.NewDomainGroup("rfq", "/rfqs")
	rfqRoutes.POST("", middleware.SubmissionRateLimit(submitLimiter), rfqHandler.Submit)
	rfqRoutes.GET("", rfqHandler.List)
	rfqRoutes.GET("/stats/summary", rfqHandler.StatusSummary)
	rfqRoutes.GET("/number/:number", rfqHandler.GetByNumber)
	rfqRoutes.GET("/:id", rfqHandler.GetByID)
	rfqRoutes.GET("/:id/quotation.pdf", rfqHandler.QuotationPDF)
	rfqRoutes.PUT("/:id/pricing", rfqHandler.SavePricing)
	rfqRoutes.POST("/:id/complete", rfqHandler.Complete)
	rfqRoutes.DELETE("/:id", rfqHandler.Delete)

	// Clients
	clientRoutes := router.NewDomainGroup("client", "/clients")
	clientRoutes.POST("", clientHandler.Create)
	clientRoutes.GET("", clientHandler.List)
	clientRoutes.GET("/whatsapp", clientHandler.GetByWhatsApp)
	clientRoutes.GET("/:id", clientHandler.GetByID)
	clientRoutes.PUT("/:id", clientHandler.Update)
	clientRoutes.DELETE("/:id", clientHandler.Delete)

	// Suppliers
	supplierRoutes := router.NewDomainGroup("supplier", "/suppliers")
	supplierRoutes.POST("", supplierHandler.Create)
	supplierRoutes.GET("", supplierHandler.List)
	supplierRoutes.GET("/:id", supplierHandler.GetByID)
	supplierRoutes.PUT("/:id", supplierHandler.Update)
	supplierRoutes.DELETE("/:id", supplierHandler.Delete)

	// Materials catalog and per-supplier offers
	materialRoutes := router.NewDomainGroup("material", "/materials")
	materialRoutes.POST("", materialHandler.Create)
	materialRoutes.GET("", materialHandler.List)
	materialRoutes.GET("/categories", materialHandler.ListCategories)
	materialRoutes.GET("/:id", materialHandler.GetByID)
	materialRoutes.PUT("/:id", materialHandler.Update)
	materialRoutes.DELETE("/:id", materialHandler.Delete)
	materialRoutes.GET("/:id/offers", materialHandler.ListSupplierOffers)
	materialRoutes.PUT("/:id/offers", materialHandler.SaveSupplierOffer)

	// Leads (created by RFQ submission, managed here)
	leadRoutes := router.NewDomainGroup("lead", "/leads")
	leadRoutes.GET("", leadHandler.List)
	leadRoutes.GET("/rfq/:rfq_id", leadHandler.GetByRFQ)
	leadRoutes.GET("/:id", leadHandler.GetByID)
	leadRoutes.PUT("/:id", leadHandler.Update)
	leadRoutes.DELETE("/:id", leadHandler.Delete)

	// Reports
	reportRoutes := router.NewDomainGroup("report", "/reports")
	reportRoutes.GET("/completed-orders", reportHandler.CompletedOrders)
	reportRoutes.GET("/completed-orders/export", reportHandler.ExportCompletedOrdersXLSX)
	reportRoutes.GET("/finance", reportHandler.Finance)

	// System
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(rfqRoutes).
		Register(clientRoutes).
		Register(supplierRoutes).
		Register(materialRoutes).
		Register(leadRoutes).
		Register(reportRoutes).
		Register(systemRoutes)

	r.Setup()

	// Simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Event bus stop failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
