package app

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/metinatakli/ev-charging-checkout/internal/domain"
	"github.com/metinatakli/ev-charging-checkout/internal/payment"
	appvalidator "github.com/metinatakli/ev-charging-checkout/internal/validator"
	"github.com/metinatakli/ev-charging-checkout/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v82"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "ev-charging-checkout"

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	templateCache  map[string]*template.Template
	sessionManager *scs.SessionManager

	product         domain.Product
	paymentProvider domain.PaymentProvider
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	templateCache map[string]*template.Template,
	sessionManager *scs.SessionManager,
	product domain.Product,
	paymentProvider domain.PaymentProvider,
) *Application {
	return &Application{
		config:          cfg,
		logger:          logger,
		templateCache:   templateCache,
		sessionManager:  sessionManager,
		product:         product,
		paymentProvider: paymentProvider,
	}
}

// Run wires the production dependencies for cfg and serves until SIGINT or SIGTERM.
func Run(cfg Config, logger *slog.Logger) error {
	stripe.Key = cfg.Stripe.SecretKey

	app := &Application{
		config: cfg,
		logger: logger,
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	product := domain.DefaultProduct()
	err = appvalidator.NewValidator().Struct(product)
	if err != nil {
		return fmt.Errorf("invalid product: %w", appvalidator.Describe(err))
	}

	templateCache, err := NewTemplateCache()
	if err != nil {
		return err
	}

	var store scs.Store = memstore.New()

	if cfg.Redis.URL != "" {
		redisClient, err := NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		store = goredisstore.New(redisClient)
	}

	successUrl, cancelUrl, err := checkoutUrls(cfg.BaseURL)
	if err != nil {
		return err
	}

	app = NewApp(
		cfg,
		logger,
		templateCache,
		NewSessionManager(store, cfg.Env),
		product,
		payment.NewStripePaymentProvider(cancelUrl, successUrl),
	)

	return app.serve()
}

func checkoutUrls(baseURL string) (successUrl, cancelUrl string, err error) {
	successUrl, err = url.JoinPath(baseURL, "success")
	if err != nil {
		return "", "", fmt.Errorf("building success url: %w", err)
	}

	cancelUrl, err = url.JoinPath(baseURL, "cancel")
	if err != nil {
		return "", "", fmt.Errorf("building cancel url: %w", err)
	}

	return successUrl, cancelUrl, nil
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if cfg.OtelCollectorUrl != "" {
		err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
		if err != nil {
			rdb.Close()
			return nil, fmt.Errorf("instrumenting redis client: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10*time.Second + checkoutTimeout,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
