package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/metinatakli/ev-charging-checkout/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

// MockPaymentProvider opens fake checkout sessions that redirect straight to the
// configured URL. It records every request it receives.
type MockPaymentProvider struct {
	mu          sync.RWMutex
	redirectUrl string
	requests    []domain.CheckoutRequest
}

func NewMockPaymentProvider(redirectUrl string) *MockPaymentProvider {
	return &MockPaymentProvider{
		redirectUrl: redirectUrl,
		requests:    make([]domain.CheckoutRequest, 0),
	}
}

func (m *MockPaymentProvider) CreateCheckoutSession(
	_ context.Context,
	req domain.CheckoutRequest) (*stripe.CheckoutSession, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)

	return &stripe.CheckoutSession{
		ID:                fmt.Sprintf("cs_test_mock_%d", len(m.requests)),
		URL:               m.redirectUrl,
		ClientReferenceID: req.ReferenceID,
		Status:            stripe.CheckoutSessionStatusOpen,
	}, nil
}

// Requests returns a copy of all received checkout requests
func (m *MockPaymentProvider) Requests() []domain.CheckoutRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()

	requests := make([]domain.CheckoutRequest, len(m.requests))
	copy(requests, m.requests)
	return requests
}
