package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/metinatakli/ev-charging-checkout/internal/domain"
)

const checkoutTimeout = 15 * time.Second

func (app *Application) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkoutTimeout)
	defer cancel()

	req := domain.CheckoutRequest{
		ReferenceID: uuid.NewString(),
		Product:     app.product,
	}

	checkoutSession, err := app.paymentProvider.CreateCheckoutSession(ctx, req)
	if err != nil {
		app.serverErrorResponse(w, r, fmt.Errorf("creating checkout session: %w", err))
		return
	}

	if checkoutSession == nil || checkoutSession.URL == "" {
		app.serverErrorResponse(w, r, domain.ErrMissingCheckoutURL)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyCheckoutReference.String(), req.ReferenceID)

	app.logger.Info("checkout session created",
		"checkout_session_id", checkoutSession.ID,
		"reference_id", req.ReferenceID,
		"request_id", middleware.GetReqID(r.Context()),
	)

	http.Redirect(w, r, checkoutSession.URL, http.StatusSeeOther)
}
