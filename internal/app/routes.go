package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/ev-charging-checkout/ui"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.secureHeaders)

	if app.config.OtelCollectorUrl != "" {
		r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	}

	r.Handle("/static/*", http.FileServerFS(ui.Files))
	r.Get("/v1/healthcheck", app.GetHealth)

	r.Group(func(r chi.Router) {
		r.Use(app.sessionManager.LoadAndSave)

		r.Get("/", app.IndexHandler)
		r.Post("/create-checkout-session", app.CreateCheckoutSessionHandler)
		r.Get("/success", app.SuccessHandler)
		r.Get("/cancel", app.CancelHandler)
	})

	return r
}
