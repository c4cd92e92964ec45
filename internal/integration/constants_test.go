package integration_test

const (
	cacheImageName = "redis:7"

	TestPublicKey          = "pk_test_integration"
	TestSecretKey          = "sk_test_integration"
	TestBaseURL            = "http://localhost:8000"
	TestCheckoutSessionURL = "https://checkout.stripe.com/c/pay/cs_test_mock"

	sessionKeyPattern = "scs:session:*"
)
