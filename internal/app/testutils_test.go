package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/ev-charging-checkout/internal/domain"
)

const (
	testPublicKey = "pk_test_51Public"
	testSecretKey = "sk_test_51Secret"
)

func newTestApplication(t *testing.T, opts ...func(*Application)) *Application {
	t.Helper()

	templateCache, err := NewTemplateCache()
	if err != nil {
		t.Fatalf("Failed to build template cache: %v", err)
	}

	app := &Application{
		config: Config{
			Port:    8000,
			Env:     "test",
			BaseURL: "http://localhost:8000",
			Stripe: StripeConfig{
				SecretKey: testSecretKey,
				PublicKey: testPublicKey,
			},
		},
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		templateCache:  templateCache,
		sessionManager: scs.New(),
		product:        domain.DefaultProduct(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(method, url string) (*httptest.ResponseRecorder, *http.Request) {
	r := httptest.NewRequest(method, url, nil)
	w := httptest.NewRecorder()

	return w, r
}

// withSession loads an empty session into the request context, the way LoadAndSave would.
func withSession(t *testing.T, app *Application, r *http.Request) *http.Request {
	t.Helper()

	ctx, err := app.sessionManager.Load(r.Context(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	return r.WithContext(ctx)
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus < 400 {
		return
	}

	var errorResp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
	}
}
