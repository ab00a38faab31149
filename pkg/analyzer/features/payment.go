package features

var paymentKeywords = []keywordEntry{
	{"Stripe", []string{"stripe"}},
	{"PayPal", []string{"paypal"}},
	{"Square", []string{"square"}},
	{"Braintree", []string{"braintree"}},
}

// DetectPaymentProviders returns every payment table entry with a matching
// dependency. A project can integrate several processors, so the scan does
// not short-circuit across entries.
func DetectPaymentProviders(deps map[string]string) []Provider {
	return detectProviders(paymentKeywords, deps)
}
