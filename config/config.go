package config

import "time"

// Config is the application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	FuelPrice FuelPriceConfig `mapstructure:"fuel_price"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	IdleTimeout     int    `mapstructure:"idle_timeout"`     // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

type RateLimitConfig struct {
	Capacity     int `mapstructure:"capacity"`
	RefillWindow int `mapstructure:"refill_window"` // milliseconds
}

type FuelPriceConfig struct {
	ProviderURL    string  `mapstructure:"provider_url"`
	APIKey         string  `mapstructure:"api_key"`
	RequestTimeout int     `mapstructure:"request_timeout"` // milliseconds
	CacheTTL       int     `mapstructure:"cache_ttl"`       // milliseconds
	FallbackPrice  float64 `mapstructure:"fallback_price"`
}

type CacheConfig struct {
	Backend string `mapstructure:"backend"` // memory | redis
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
