package domain

import (
	"context"

	"github.com/stripe/stripe-go/v82"
)

type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*stripe.CheckoutSession, error)
}
