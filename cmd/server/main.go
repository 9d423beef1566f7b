package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cartapp "github.com/artisan/storefront/internal/application/cart"
	catalogapp "github.com/artisan/storefront/internal/application/catalog"
	checkoutapp "github.com/artisan/storefront/internal/application/checkout"
	identityapp "github.com/artisan/storefront/internal/application/identity"
	"github.com/artisan/storefront/internal/infrastructure/auth"
	"github.com/artisan/storefront/internal/infrastructure/config"
	"github.com/artisan/storefront/internal/infrastructure/event"
	"github.com/artisan/storefront/internal/infrastructure/logger"
	"github.com/artisan/storefront/internal/infrastructure/memory"
	"github.com/artisan/storefront/internal/infrastructure/payment"
	"github.com/artisan/storefront/internal/infrastructure/telemetry"
	"github.com/artisan/storefront/internal/interfaces/http/handler"
	"github.com/artisan/storefront/internal/interfaces/http/middleware"
	"github.com/artisan/storefront/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Artisan Storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}

	// Initialize in-memory stores
	catalogStore, err := memory.NewSeededCatalogStore()
	if err != nil {
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}
	cartStore := memory.NewCartStore()
	sessionStore := memory.NewSessionStore()
	checkoutStore := memory.NewCheckoutStore()

	// Initialize event bus and projections
	eventBus := event.NewInMemoryEventBus(log)
	badgeProjection := cartapp.NewBadgeProjection()
	eventBus.Subscribe(badgeProjection)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Initialize infrastructure services
	jwtService := auth.NewJWTService(cfg.JWT)
	gateway := payment.NewSimulatedGateway(cfg.Checkout.ProcessingDelay, log)

	// Initialize application services
	catalogService := catalogapp.NewService(catalogStore, catalogStore.Plans())
	cartService := cartapp.NewService(cartStore, catalogStore, log)
	identityService := identityapp.NewService(sessionStore, catalogStore.Plans(), jwtService, log)
	checkoutService := checkoutapp.NewService(
		checkoutStore,
		cartStore,
		sessionStore,
		catalogStore.Plans(),
		gateway,
		cfg.Checkout.ChargeTimeout,
		log,
	)

	cartService.SetEventPublisher(eventBus)
	identityService.SetEventPublisher(eventBus)
	checkoutService.SetEventPublisher(eventBus)

	// Initialize HTTP handlers
	systemHandler := handler.NewSystemHandler()
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService, badgeProjection)
	authHandler := handler.NewAuthHandler(identityService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, tracing, CORS
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tracerProvider.IsEnabled(),
	}))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// API routes. Session extraction is optional: carts and checkouts
	// work for anonymous visitors too.
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.OptionalSessionMiddleware(jwtService))

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/health", systemHandler.Health)
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)

	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.GET("/products", catalogHandler.ListProducts)
	catalogRoutes.GET("/products/:id", catalogHandler.GetProduct)
	catalogRoutes.GET("/plans", catalogHandler.ListPlans)
	catalogRoutes.GET("/plans/:code", catalogHandler.GetPlan)

	cartRoutes := router.NewDomainGroup("cart", "/carts")
	cartRoutes.POST("", cartHandler.Create)
	cartRoutes.GET("/:id", cartHandler.Get)
	cartRoutes.GET("/:id/badge", cartHandler.Badge)
	cartRoutes.POST("/:id/items", cartHandler.AddItem)
	cartRoutes.PATCH("/:id/items/:productId", cartHandler.UpdateQuantity)
	cartRoutes.DELETE("/:id/items/:productId", cartHandler.RemoveItem)
	cartRoutes.DELETE("/:id/items", cartHandler.Clear)

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/guest", authHandler.LoginGuest)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/session", authHandler.GetSession)
	authRoutes.PUT("/session/plan", authHandler.UpdatePlan)

	checkoutRoutes := router.NewDomainGroup("checkout", "/checkouts")
	checkoutRoutes.POST("/orders", checkoutHandler.CreateOrder)
	checkoutRoutes.POST("/subscriptions", checkoutHandler.CreateSubscription)
	checkoutRoutes.GET("/:id", checkoutHandler.Get)
	checkoutRoutes.POST("/:id/confirm", checkoutHandler.Confirm)

	r.Register(systemRoutes).
		Register(catalogRoutes).
		Register(cartRoutes).
		Register(authRoutes).
		Register(checkoutRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Let in-flight checkout settlements finish before tearing down
	checkoutService.Wait()

	if err := eventBus.Stop(ctx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
