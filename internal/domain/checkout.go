package domain

// CheckoutRequest carries what the payment provider needs to open a hosted
// checkout session. ReferenceID is attached to the session for correlation only.
type CheckoutRequest struct {
	ReferenceID string
	Product     Product
}
