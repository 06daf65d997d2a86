package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vstore-backend/config"
	"vstore-backend/internal/delivery/http/middleware"
	v1 "vstore-backend/internal/delivery/http/v1"
	"vstore-backend/internal/infrastructure/cache"
	"vstore-backend/internal/repository/postgres"
	"vstore-backend/internal/usecase"
	"vstore-backend/pkg/logger"
	"vstore-backend/pkg/utils"

	"github.com/NYTimes/gziphandler"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Initialize Database
	pgxPool, err := postgres.NewPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pgxPool.Close()

	if err := postgres.EnsureSchema(context.Background(), pgxPool); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}
	log.Info().Msg("Successfully connected to PostgreSQL")

	// Initialize Repositories
	orderRepo := postgres.NewOrderRepository(pgxPool)
	staffRepo := postgres.NewStaffRepository(pgxPool)

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Auth Module
	authUC := usecase.NewAuthUsecase(staffRepo, cfg.AccessTokenExpiry)
	authHandler := v1.NewAuthHandler(authUC)

	// Staff Module
	staffUC := usecase.NewStaffUsecase(staffRepo)
	staffHandler := v1.NewStaffHandler(staffUC)

	// Seed the configured admin account
	if err := staffUC.EnsureAdmin(context.Background(), cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin account")
	}

	// Order Module
	orderUC := usecase.NewOrderUsecase(orderRepo, memCache, cfg.CacheOrderTTL)
	notificationUC := usecase.NewNotificationUsecase(orderRepo, cfg.FrontendURL)
	adminOrderHandler := v1.NewAdminOrderHandler(orderUC, notificationUC)

	// Public Tracking Module
	searchUC := usecase.NewSearchUsecase(orderRepo)
	orderHandler := v1.NewOrderHandler(orderUC, searchUC)

	// Config Handler
	configHandler := v1.NewConfigHandler(memCache, cfg.CacheEnumsTTL)

	authOnly := middleware.NewAuthMiddleware(authUC)
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return authOnly(middleware.AdminMiddleware(h))
	}
	staffOnly := func(h http.HandlerFunc) http.Handler {
		return authOnly(h)
	}

	// Config (Public)
	mux.HandleFunc("GET /api/v1/config/enums", configHandler.GetEnums)

	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.Handle("GET /api/v1/auth/me", staffOnly(authHandler.Me))

	// Tracking (Public)
	mux.HandleFunc("GET /api/v1/orders/search", orderHandler.Search)
	mux.HandleFunc("GET /api/v1/orders/{id}/track", orderHandler.TrackOrder)
	mux.HandleFunc("POST /api/v1/orders/{id}/return", orderHandler.InitiateReturn)

	// Order Management (Protected)
	// Capability checks live in the usecases; the router only requires a
	// valid session here. Deletion additionally requires the admin role.
	mux.Handle("GET /api/v1/admin/orders", staffOnly(adminOrderHandler.ListOrders))
	mux.Handle("POST /api/v1/admin/orders", staffOnly(adminOrderHandler.CreateOrder))
	mux.Handle("GET /api/v1/admin/orders/{id}", staffOnly(adminOrderHandler.GetOrder))
	mux.Handle("PATCH /api/v1/admin/orders/{id}", staffOnly(adminOrderHandler.UpdateOrder))
	mux.Handle("PUT /api/v1/admin/orders/{id}/status", staffOnly(adminOrderHandler.UpdateStatus))
	mux.Handle("PUT /api/v1/admin/orders/{id}/pickup", staffOnly(adminOrderHandler.SchedulePickup))
	mux.Handle("GET /api/v1/admin/orders/{id}/whatsapp", staffOnly(adminOrderHandler.ComposeWhatsApp))
	mux.Handle("DELETE /api/v1/admin/orders/{id}", adminOnly(adminOrderHandler.DeleteOrder))

	// Staff Administration (Admin only)
	mux.Handle("GET /api/v1/admin/staff", adminOnly(staffHandler.ListStaff))
	mux.Handle("POST /api/v1/admin/staff", adminOnly(staffHandler.CreateStaff))
	mux.Handle("PATCH /api/v1/admin/staff/{id}", adminOnly(staffHandler.UpdateStaff))
	mux.Handle("DELETE /api/v1/admin/staff/{id}", adminOnly(staffHandler.DeleteStaff))

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok", "db": "connected"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Support root health check for Load Balancers

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	// 50 req/s, burst 100, cleanup every minute, TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		50,            // requests per second
		100,           // burst
		time.Minute,   // cleanup period
		3*time.Minute, // client TTL
	)

	// Apply CORS (with config injection), Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
