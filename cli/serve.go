package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"commute-agent/config"
	httpLayer "commute-agent/http"
	"commute-agent/logger"
	"commute-agent/repository"
	"commute-agent/service"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.address)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Address = addr
	}

	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zl.Sync() }()
	log := logger.NewZapAdapter(zl)

	cache, err := newCache(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	prices := service.NewFuelPriceService(fuelOptions(cfg), cache, log)

	limiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, config.GetDuration(cfg.RateLimit.RefillWindow))
	defer limiter.Stop()

	server := &http.Server{
		Addr: cfg.Server.Address,
		Handler: httpLayer.NewRouter(httpLayer.RouterDeps{
			Engine:  service.NewRecommendationEngine(log),
			Prices:  prices,
			Limiter: limiter,
			Logger:  log,
		}),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
		IdleTimeout:  config.GetDuration(cfg.Server.IdleTimeout),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("api listening", map[string]interface{}{"address": cfg.Server.Address})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case <-quit:
		log.Info("shutting down server", nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server exited", nil)
	return nil
}

func fuelOptions(cfg *config.Config) service.FuelPriceOptions {
	return service.FuelPriceOptions{
		ProviderURL:    cfg.FuelPrice.ProviderURL,
		APIKey:         cfg.FuelPrice.APIKey,
		RequestTimeout: config.GetDuration(cfg.FuelPrice.RequestTimeout),
		CacheTTL:       config.GetDuration(cfg.FuelPrice.CacheTTL),
		FallbackPrice:  cfg.FuelPrice.FallbackPrice,
	}
}

// newCache builds the configured price cache. An unreachable redis is fatal at
// startup rather than a silent downgrade.
func newCache(ctx context.Context, cfg *config.Config, log logger.Logger) (repository.CacheRepository, error) {
	if cfg.Cache.Backend != config.BackendRedis {
		return repository.NewMemoryCache(), nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cache := repository.NewRedisCache(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("connect redis at %s: %w", cfg.Redis.Address, err)
	}
	log.Info("using redis price cache", map[string]interface{}{"address": cfg.Redis.Address})
	return cache, nil
}
