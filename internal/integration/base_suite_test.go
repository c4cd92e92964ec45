package integration_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/metinatakli/ev-charging-checkout/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

type BaseSuite struct {
	suite.Suite
	app            *TestApp
	cacheContainer *RedisContainer
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	redisContainer, err := getCacheContainer(ctx)
	s.Require().NoError(err)

	s.cacheContainer = redisContainer

	cfg := app.Config{
		Port:    8000,
		Env:     "test",
		BaseURL: TestBaseURL,
		Redis: app.RedisConfig{
			URL:          redisContainer.ConnectionString,
			MaxOpenConns: 10,
			MaxIdleConns: 10,
			MaxIdleTime:  2 * time.Minute,
		},
		Stripe: app.StripeConfig{
			SecretKey: TestSecretKey,
			PublicKey: TestPublicKey,
		},
	}

	testApp, err := newTestApp(cfg)
	s.Require().NoError(err)

	s.app = testApp
}

func (s *BaseSuite) TearDownSuite() {
	if s.app != nil {
		s.app.Redis.Close()
	}

	if s.cacheContainer != nil {
		err := testcontainers.TerminateContainer(s.cacheContainer.Container)
		s.NoError(err)
	}
}

func (s *BaseSuite) TearDownTest() {
	if s.app != nil {
		s.app.Redis.FlushAll(context.Background())
	}
}

type Scenario struct {
	Name                 string
	Method               string
	URL                  string
	Body                 io.Reader
	Headers              map[string]string
	Cookies              []*http.Cookie
	ExpectedStatus       int
	ExpectedResponse     string
	ExpectedBodyContains []string
	BeforeTestFunc       func(t testing.TB, app *TestApp)
	AfterTestFunc        func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		req := prepareRequest(s.Method, s.URL, s.Body, s.Headers, s.Cookies)

		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		rec := httptest.NewRecorder()
		testApp.App.Routes().ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse)
		}

		if len(s.ExpectedBodyContains) > 0 {
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			for _, want := range s.ExpectedBodyContains {
				assert.True(t, strings.Contains(string(body), want), "body should contain %q", want)
			}
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}
