package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"compound-interest/config"
	"compound-interest/domain"
	httpLayer "compound-interest/http"
	"compound-interest/report"
	"compound-interest/repository"
	"compound-interest/service"
	"compound-interest/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	shutdownTracing, err := telemetry.Setup(context.Background(), "compound-interest", cfg.OTelEndpoint, cfg.TracingEnabled())
	if err != nil {
		log.Printf("Warning: tracing disabled: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("Warning: failed to flush traces: %v", err)
		}
	}()

	money, err := report.NewCurrencyFormatter(cfg.Locale, cfg.CurrencySymbol)
	if err != nil {
		log.Printf("Warning: %v, using %s", err, report.DefaultLocale)
		money = report.DefaultCurrencyFormatter()
	}

	cache := newCache(cfg.RedisAddr)

	feed := service.NewLedgerFeed()
	unsubscribe := feed.Subscribe(func(_ context.Context, input domain.ProjectionInput, ledger domain.Ledger) {
		log.Printf("Projection %s over %d years -> %s",
			money.Format(input.Principal), input.Years, money.Format(ledger.Summary.FinalBalance))
	})
	defer unsubscribe()

	projectionService := service.NewProjectionService(cache, feed, cfg.CacheTTL)
	goalService := service.NewGoalService(projectionService)
	insightService := service.NewInsightService(cfg.OpenAIAPIKey, cfg.OpenAIModel, money)

	sessionRepo := repository.NewSessionRepositoryMemory(cfg.SessionTTL)
	defer sessionRepo.Stop()
	sessionService := service.NewSessionService(sessionRepo, projectionService)

	projectionHandler := httpLayer.NewProjectionHandler(projectionService, goalService, insightService)
	pageHandler := httpLayer.NewPageHandler(sessionService, money, int(cfg.SessionTTL.Seconds()))
	exportHandler := httpLayer.NewExportHandler(projectionService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	route := func(pattern string, h http.HandlerFunc) http.Handler {
		return httpLayer.TracingMiddleware(pattern, httpLayer.RateLimitMiddleware(rateLimiter, h))
	}

	mux := http.NewServeMux()
	mux.Handle("/", route("/", pageHandler.Show))
	mux.Handle("/projection/calculate", route("/projection/calculate", projectionHandler.Calculate))
	mux.Handle("/projection/explain", route("/projection/explain", projectionHandler.Explain))
	mux.Handle("/projection/goal", route("/projection/goal", projectionHandler.Goal))
	mux.Handle("/projection/export.xlsx", route("/projection/export.xlsx", exportHandler.LedgerXLSX))

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Compound interest calculator listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

// newCache uses Redis when an address is configured and reachable, and an
// in-memory cache otherwise.
func newCache(redisAddr string) repository.CacheRepository {
	if redisAddr == "" {
		return repository.NewMemoryCache()
	}

	redisCache := repository.NewRedisCache(redisAddr)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("Warning: redis at %s unavailable, using in-memory cache: %v", redisAddr, err)
		redisCache.Close()
		return repository.NewMemoryCache()
	}
	return redisCache
}
