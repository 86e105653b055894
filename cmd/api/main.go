package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartchoice-state/config"
	"smartchoice-state/internal/delivery/http/middleware"
	v1 "smartchoice-state/internal/delivery/http/v1"
	"smartchoice-state/internal/infrastructure/cache"
	"smartchoice-state/internal/repository/pgxrepo"
	"smartchoice-state/internal/state"
	"smartchoice-state/internal/usecase"
	"smartchoice-state/pkg/logger"
	"smartchoice-state/pkg/storage"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.LoadConfig()

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Durable session-state store (one document per collection)
	fileStore, err := storage.NewFileStore(cfg.StateDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize state directory")
	}
	log.Info().Str("dir", cfg.StateDir).Msg("Session state directory ready")

	// Catalog / order backend
	pgxPool, err := pgxrepo.NewPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	log.Info().Msg("Successfully connected to PostgreSQL")

	catalogRepo := pgxrepo.NewCatalogRepository(pgxPool)
	orderRepo := pgxrepo.NewOrderRepository(pgxPool)

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	catalogUC := usecase.NewCatalogUsecase(catalogRepo, memCache, cfg.CacheProductTTL)
	checkoutUC := usecase.NewCheckoutUsecase(orderRepo)

	// --- Session Stores ---
	// One instance each per process; hydrated before the listener starts
	// so no mutation can race the initial load.
	cart := state.NewCart(fileStore)
	wishlist := state.NewWishlist(fileStore)
	recent := state.NewRecentlyViewed(fileStore, cfg.RecentlyViewedCap)
	alerts := state.NewPriceAlerts(fileStore)
	compare := state.NewCompare(fileStore, cfg.CompareCap)
	searches := state.NewRecentSearches(fileStore, cfg.RecentSearchesCap)

	cart.Hydrate()
	wishlist.Hydrate()
	recent.Hydrate()
	alerts.Hydrate()
	compare.Hydrate()
	searches.Hydrate()
	log.Info().
		Int("cart_items", cart.TotalItems()).
		Int("wishlist", wishlist.Len()).
		Int("recently_viewed", recent.Len()).
		Int("alerts", len(alerts.Alerts())).
		Int("recent_searches", searches.Len()).
		Msg("Session state hydrated")

	// Set up Router
	mux := http.NewServeMux()

	cartHandler := v1.NewCartHandler(cart, catalogUC)
	wishlistHandler := v1.NewWishlistHandler(wishlist, catalogUC)
	recentHandler := v1.NewRecentHandler(recent, catalogUC)
	alertsHandler := v1.NewAlertsHandler(alerts, catalogUC)
	compareHandler := v1.NewCompareHandler(compare, catalogUC)
	searchesHandler := v1.NewSearchesHandler(searches)
	checkoutHandler := v1.NewCheckoutHandler(cart, checkoutUC)

	// Cart
	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem)
	mux.HandleFunc("PATCH /api/v1/cart/items/{productId}", cartHandler.SetQuantity)
	mux.HandleFunc("DELETE /api/v1/cart/items/{productId}", cartHandler.RemoveItem)
	mux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart)

	// Wishlist
	mux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetWishlist)
	mux.HandleFunc("POST /api/v1/wishlist/items", wishlistHandler.AddToWishlist)
	mux.HandleFunc("DELETE /api/v1/wishlist/items/{productId}", wishlistHandler.RemoveFromWishlist)

	// Recently viewed
	mux.HandleFunc("GET /api/v1/recently-viewed", recentHandler.GetRecentlyViewed)
	mux.HandleFunc("POST /api/v1/recently-viewed", recentHandler.RecordView)
	mux.HandleFunc("DELETE /api/v1/recently-viewed", recentHandler.ClearRecentlyViewed)

	// Price alerts
	mux.HandleFunc("GET /api/v1/price-alerts", alertsHandler.GetAlerts)
	mux.HandleFunc("POST /api/v1/price-alerts", alertsHandler.CreateAlert)
	mux.HandleFunc("PATCH /api/v1/price-alerts/{productId}", alertsHandler.UpdateAlert)
	mux.HandleFunc("DELETE /api/v1/price-alerts/{productId}", alertsHandler.RemoveAlert)
	mux.HandleFunc("DELETE /api/v1/price-alerts", alertsHandler.ClearAlerts)

	// Compare
	mux.HandleFunc("GET /api/v1/compare", compareHandler.GetCompareList)
	mux.HandleFunc("POST /api/v1/compare/items", compareHandler.AddToCompare)
	mux.HandleFunc("DELETE /api/v1/compare/items/{productId}", compareHandler.RemoveFromCompare)
	mux.HandleFunc("DELETE /api/v1/compare", compareHandler.ClearCompare)

	// Recent searches
	mux.HandleFunc("GET /api/v1/recent-searches", searchesHandler.GetRecentSearches)
	mux.HandleFunc("POST /api/v1/recent-searches", searchesHandler.RecordSearch)
	mux.HandleFunc("DELETE /api/v1/recent-searches", searchesHandler.ClearRecentSearches)

	// Checkout
	mux.HandleFunc("POST /api/v1/checkout", checkoutHandler.PlaceOrder)

	// --- Middleware chain ---
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		5*time.Minute,
		10*time.Minute,
	)
	defer rateLimiter.Shutdown()

	corsMiddleware := middleware.NewCORSMiddleware(cfg)

	var handler http.Handler = mux
	handler = rateLimiter.Middleware()(handler)
	handler = corsMiddleware(handler)
	handler = middleware.RequestLogger(handler)
	handler = gziphandler.GzipHandler(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.ServiceStart("smartchoice-state", "1.0.0", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}

	pgxPool.Close()
	logger.ServiceStop("smartchoice-state")
}
