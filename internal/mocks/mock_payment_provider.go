package mocks

import (
	"context"

	"github.com/metinatakli/ev-charging-checkout/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"
)

type MockPaymentProvider struct {
	mock.Mock
	domain.PaymentProvider
}

func (m *MockPaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	req domain.CheckoutRequest) (*stripe.CheckoutSession, error) {

	args := m.Called(ctx, req)

	checkoutSession, _ := args.Get(0).(*stripe.CheckoutSession)
	return checkoutSession, args.Error(1)
}
