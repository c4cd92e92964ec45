package payment

import (
	"context"

	"github.com/metinatakli/ev-charging-checkout/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

type StripePaymentProvider struct {
	cancelUrl  string
	successUrl string
}

func NewStripePaymentProvider(cancelUrl, successUrl string) *StripePaymentProvider {
	return &StripePaymentProvider{
		cancelUrl:  cancelUrl,
		successUrl: successUrl,
	}
}

func (s *StripePaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	req domain.CheckoutRequest) (*stripe.CheckoutSession, error) {

	product := req.Product

	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(product.Name),
	}

	// Stripe rejects an empty description
	if product.Description != "" {
		productData.Description = stripe.String(product.Description)
	}

	lineItem := &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:    stripe.String(product.Currency),
			UnitAmount:  stripe.Int64(product.UnitAmount()),
			ProductData: productData,
		},
		Quantity: stripe.Int64(product.Quantity),
	}

	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
		PaymentMethodTypes: stripe.StringSlice([]string{string(stripe.PaymentMethodTypeCard)}),
		LineItems:          []*stripe.CheckoutSessionLineItemParams{lineItem},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(s.successUrl),
		CancelURL:          stripe.String(s.cancelUrl),
	}

	if req.ReferenceID != "" {
		params.ClientReferenceID = stripe.String(req.ReferenceID)
	}

	return session.New(params)
}
