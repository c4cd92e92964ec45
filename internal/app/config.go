package app

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	appvalidator "github.com/metinatakli/ev-charging-checkout/internal/validator"
)

type Config struct {
	Port             int    `validate:"min=1,max=65535"`
	Env              string `validate:"oneof=dev staging prod test"`
	BaseURL          string `validate:"required,url"`
	OtelCollectorUrl string
	Redis            RedisConfig
	Stripe           StripeConfig

	DisplayVersion bool `validate:"-"`
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int `validate:"min=1"`
	MaxIdleConns int `validate:"min=0"`
	MaxIdleTime  time.Duration
}

type StripeConfig struct {
	SecretKey string `validate:"required"`
	PublicKey string `validate:"required"`
}

// ParseConfig reads the configuration from args. Environment variables, looked
// up with getenv, provide the defaults so that a .env file is enough to run.
func ParseConfig(args []string, getenv func(string) string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("api", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "port", envInt(getenv, "PORT", 8000), "server port")
	fs.StringVar(&cfg.Env, "env", envString(getenv, "ENV", "dev"), "Environment (dev|staging|prod)")
	fs.StringVar(&cfg.BaseURL, "base-url", envString(getenv, "BASE_URL", "http://localhost:8000"), "Public base URL used for checkout redirects")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector gRPC endpoint")

	fs.StringVar(&cfg.Redis.URL, "redis-url", getenv("REDIS_URL"), "Redis URL for the session store (in-memory store when empty)")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	fs.StringVar(&cfg.Stripe.SecretKey, "stripe-key", getenv("STRIPE_SECRET_KEY"), "Stripe secret key")
	fs.StringVar(&cfg.Stripe.PublicKey, "stripe-public-key", getenv("STRIPE_PUBLIC_KEY"), "Stripe publishable key")

	fs.BoolVar(&cfg.DisplayVersion, "version", false, "Display version and exit")

	err := fs.Parse(args)
	if err != nil {
		return Config{}, err
	}

	if cfg.DisplayVersion {
		return cfg, nil
	}

	err = appvalidator.NewValidator().Struct(cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", appvalidator.Describe(err))
	}

	return cfg, nil
}

func envString(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}

	return fallback
}

func envInt(getenv func(string) string, key string, fallback int) int {
	v, err := strconv.Atoi(getenv(key))
	if err != nil {
		return fallback
	}

	return v
}
