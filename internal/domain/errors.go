package domain

import "errors"

var (
	ErrMissingCheckoutURL = errors.New("checkout session has no redirect url")
)
