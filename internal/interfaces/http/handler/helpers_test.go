package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	cartapp "github.com/artisan/storefront/internal/application/cart"
	catalogapp "github.com/artisan/storefront/internal/application/catalog"
	checkoutapp "github.com/artisan/storefront/internal/application/checkout"
	identityapp "github.com/artisan/storefront/internal/application/identity"
	"github.com/artisan/storefront/internal/infrastructure/auth"
	"github.com/artisan/storefront/internal/infrastructure/config"
	"github.com/artisan/storefront/internal/infrastructure/event"
	"github.com/artisan/storefront/internal/infrastructure/memory"
	"github.com/artisan/storefront/internal/infrastructure/payment"
	"github.com/artisan/storefront/internal/interfaces/http/middleware"
	"github.com/artisan/storefront/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testServer wires the full HTTP stack over in-memory stores,
// with the simulated gateway running at zero delay.
type testServer struct {
	engine          *gin.Engine
	checkoutService *checkoutapp.Service
	catalogStore    *memory.CatalogStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()

	catalogStore, err := memory.NewSeededCatalogStore()
	require.NoError(t, err)
	cartStore := memory.NewCartStore()
	sessionStore := memory.NewSessionStore()
	checkoutStore := memory.NewCheckoutStore()

	eventBus := event.NewInMemoryEventBus(log)
	badge := cartapp.NewBadgeProjection()
	eventBus.Subscribe(badge)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:            "test-secret",
		SessionExpiration: time.Hour,
		Issuer:            "storefront-test",
	})
	gateway := payment.NewSimulatedGateway(0, log)

	catalogService := catalogapp.NewService(catalogStore, catalogStore.Plans())
	cartService := cartapp.NewService(cartStore, catalogStore, log)
	identityService := identityapp.NewService(sessionStore, catalogStore.Plans(), jwtService, log)
	checkoutService := checkoutapp.NewService(
		checkoutStore, cartStore, sessionStore, catalogStore.Plans(),
		gateway, 5*time.Second, log,
	)

	cartService.SetEventPublisher(eventBus)
	identityService.SetEventPublisher(eventBus)
	checkoutService.SetEventPublisher(eventBus)

	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.OptionalSessionMiddleware(jwtService))

	systemHandler := NewSystemHandler()
	catalogHandler := NewCatalogHandler(catalogService)
	cartHandler := NewCartHandler(cartService, badge)
	authHandler := NewAuthHandler(identityService)
	checkoutHandler := NewCheckoutHandler(checkoutService)

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

	return &testServer{
		engine:          engine,
		checkoutService: checkoutService,
		catalogStore:    catalogStore,
	}
}

// do performs a request against the test server and decodes the envelope
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)

	var envelope map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}

func dataOf(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "response data is not an object: %v", envelope)
	return data
}

func listOf(t *testing.T, envelope map[string]any) []any {
	t.Helper()
	data, ok := envelope["data"].([]any)
	require.True(t, ok, "response data is not a list: %v", envelope)
	return data
}

func errorCodeOf(t *testing.T, envelope map[string]any) string {
	t.Helper()
	errInfo, ok := envelope["error"].(map[string]any)
	require.True(t, ok, "response has no error: %v", envelope)
	code, _ := errInfo["code"].(string)
	return code
}
