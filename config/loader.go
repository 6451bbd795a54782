package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	DefaultFuelProviderURL = "https://www.opinet.co.kr/api/avgAllPrice.do"
)

// Load reads config.yaml from ./configs or the working directory, then .env,
// then environment variables (SERVER_ADDRESS, FUEL_PRICE_API_KEY, ...).
// A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	return load(v, false)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return load(v, true)
}

func load(v *viper.Viper, requireFile bool) (*Config, error) {
	loadEnvFile()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || requireFile {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// AutomaticEnv only resolves keys viper already knows about, so every key
// that may come purely from the environment is bound here.
func bindEnv(v *viper.Viper) {
	keys := []string{
		"server.address", "server.read_timeout", "server.write_timeout",
		"server.idle_timeout", "server.shutdown_timeout",
		"rate_limit.capacity", "rate_limit.refill_window",
		"fuel_price.provider_url", "fuel_price.api_key", "fuel_price.request_timeout",
		"fuel_price.cache_ttl", "fuel_price.fallback_price",
		"cache.backend",
		"redis.address", "redis.password", "redis.db",
		"logging.level", "logging.format",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

func loadEnvFile() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// applyDefaults fills every unset field so the binary runs without a file.
func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15000
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}

	if cfg.RateLimit.Capacity == 0 {
		cfg.RateLimit.Capacity = 30
	}
	if cfg.RateLimit.RefillWindow == 0 {
		cfg.RateLimit.RefillWindow = 60000
	}

	if cfg.FuelPrice.ProviderURL == "" {
		cfg.FuelPrice.ProviderURL = DefaultFuelProviderURL
	}
	if cfg.FuelPrice.RequestTimeout == 0 {
		cfg.FuelPrice.RequestTimeout = 3000
	}
	if cfg.FuelPrice.CacheTTL == 0 {
		cfg.FuelPrice.CacheTTL = 30 * 60 * 1000
	}
	if cfg.FuelPrice.FallbackPrice == 0 {
		cfg.FuelPrice.FallbackPrice = 1650
	}

	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = BackendMemory
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = "localhost:6379"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.Cache.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("cache.backend must be %q or %q, got %q", BackendMemory, BackendRedis, cfg.Cache.Backend)
	}
	if cfg.RateLimit.Capacity < 0 {
		return fmt.Errorf("rate_limit.capacity must not be negative")
	}
	if cfg.FuelPrice.FallbackPrice < 0 {
		return fmt.Errorf("fuel_price.fallback_price must not be negative")
	}
	return nil
}
