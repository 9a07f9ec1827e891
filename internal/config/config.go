package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string         `mapstructure:"env" validate:"oneof=dev test prod"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Exchange ExchangeConfig `mapstructure:"exchange"`
	Sentry   SentryConfig   `mapstructure:"sentry"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

type HTTPConfig struct {
	Port         string   `mapstructure:"port" validate:"required,numeric"`
	RefreshRPS   float64  `mapstructure:"refresh_rps" validate:"gt=0"`
	RefreshBurst int      `mapstructure:"refresh_burst" validate:"gte=1"`
	CORSOrigins  []string `mapstructure:"cors_origins"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

type StorageConfig struct {
	Backend     string `mapstructure:"backend" validate:"oneof=file postgres redis"`
	DataDir     string `mapstructure:"data_dir" validate:"required_if=Backend file"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Backend postgres"`
	RedisAddr   string `mapstructure:"redis_addr" validate:"required_if=Backend redis"`
	RedisPrefix string `mapstructure:"redis_prefix"`
}

type ExchangeConfig struct {
	BaseURL      string        `mapstructure:"base_url" validate:"required,url"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gt=0"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl" validate:"gt=0"`
	FallbackRate float64       `mapstructure:"fallback_rate" validate:"gt=0"`
}

type SentryConfig struct {
	DSN string `mapstructure:"dsn" validate:"omitempty,url"`
}

type WorkerConfig struct {
	Size  int `mapstructure:"size" validate:"gte=1"`
	Queue int `mapstructure:"queue" validate:"gte=1"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.refresh_rps", 0.2)
	v.SetDefault("http.refresh_burst", 3)
	v.SetDefault("http.cors_origins", []string{"*"})
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("storage.database_url", "")
	v.SetDefault("storage.redis_addr", "")
	v.SetDefault("storage.redis_prefix", "mindbank:")
	v.SetDefault("exchange.base_url", "https://api.exchangerate-api.com")
	v.SetDefault("exchange.timeout", "5s")
	v.SetDefault("exchange.cache_ttl", "1h")
	v.SetDefault("exchange.fallback_rate", 0.85)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("worker.size", 1)
	v.SetDefault("worker.queue", 8)
}

// Load reads .env, then configs/<env>.yaml (or file when given), then
// MINDBANK_* environment variables, and validates the result.
func Load(file string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("MINDBANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// unprefixed names commonly set by hosting platforms
	_ = v.BindEnv("env", "MINDBANK_ENV", "APP_ENV")
	_ = v.BindEnv("http.port", "MINDBANK_HTTP_PORT", "PORT")
	_ = v.BindEnv("storage.database_url", "MINDBANK_STORAGE_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("sentry.dsn", "MINDBANK_SENTRY_DSN", "SENTRY_DSN")

	if file == "" {
		file = fmt.Sprintf("configs/%s.yaml", v.GetString("env"))
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			file = ""
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
