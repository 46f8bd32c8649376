package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/storefront-api/server/internal/config"
	"github.com/storefront-api/server/internal/handlers"
	"github.com/storefront-api/server/internal/middleware"
	"github.com/storefront-api/server/internal/repository"
	"github.com/storefront-api/server/internal/service"
	"github.com/storefront-api/server/internal/store"
	"github.com/storefront-api/server/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Local development convenience; absence of .env is not an error
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting e-commerce api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Connect to the document store. The server still starts when the store
	// is unreachable: store-backed endpoints answer 500 and the diagnostics
	// endpoint reports the degraded state.
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	db, err := store.Connect(connectCtx, cfg.Database.URL, cfg.Database.Name)
	cancelConnect()
	if err != nil {
		log.Error("database unavailable, serving without store", "error", err)
	} else {
		log.Info("connected to database", "database", cfg.Database.Name)
	}

	// Initialize repositories
	var productRepo repository.ProductRepository
	var orderRepo repository.OrderRepository
	if db != nil {
		productRepo = repository.NewMongoProductRepository(db)
		orderRepo = repository.NewMongoOrderRepository(db)
	} else {
		productRepo = repository.UnavailableProductRepository{}
		orderRepo = repository.UnavailableOrderRepository{}
	}

	// Initialize services
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo)

	// Initialize handlers
	rootHandler := handlers.NewRootHandler(log)
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	seedHandler := handlers.NewSeedHandler(productService, log)
	diagHandler := handlers.NewDiagnosticsHandler(db, cfg.Database.URLSet, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	r.Get("/", rootHandler.ServeHTTP)
	r.Get("/health", healthHandler.ServeHTTP)
	r.Get("/test", diagHandler.ServeHTTP)
	r.With(middleware.APIKeyAuth(cfg.Auth)).Post("/seed", seedHandler.SeedProducts)
	r.Get("/products", productHandler.ListProducts)
	r.Get("/products/{productID}", productHandler.GetProduct)
	r.Post("/orders", orderHandler.CreateOrder)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	disconnect(ctx, db, log)

	log.Info("server stopped gracefully")
}

func disconnect(ctx context.Context, db *mongo.Database, log *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		log.Error("failed to disconnect from database", "error", err)
	}
}
