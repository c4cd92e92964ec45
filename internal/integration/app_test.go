package integration_test

import (
	"io"
	"log/slog"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/metinatakli/ev-charging-checkout/internal/app"
	"github.com/metinatakli/ev-charging-checkout/internal/domain"
	"github.com/metinatakli/ev-charging-checkout/internal/payment"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App             *app.Application
	Redis           *redis.Client
	PaymentProvider *payment.MockPaymentProvider
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	templateCache, err := app.NewTemplateCache()
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(goredisstore.New(redisClient), cfg.Env)
	paymentProvider := payment.NewMockPaymentProvider(TestCheckoutSessionURL)

	application := app.NewApp(
		cfg,
		logger,
		templateCache,
		sessionManager,
		domain.DefaultProduct(),
		paymentProvider,
	)

	return &TestApp{
		App:             application,
		Redis:           redisClient,
		PaymentProvider: paymentProvider,
	}, nil
}
