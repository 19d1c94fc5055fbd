package stripe

import (
	"strings"

	stripeapi "github.com/stripe/stripe-go/v82"
)

// Stripe-ish normalization used ONLY for checkout-session payment status
func NormalizePaymentStatus(s stripeapi.CheckoutSessionPaymentStatus) string {
	switch strings.TrimSpace(string(s)) {
	case "":
		return "unknown"
	case "paid":
		return "paid"
	case "unpaid", "no_payment_required":
		return "unpaid"
	default:
		return strings.TrimSpace(string(s))
	}
}

// IsPaid reports whether the processor considers the session settled.
func IsPaid(s stripeapi.CheckoutSessionPaymentStatus) bool {
	return NormalizePaymentStatus(s) == "paid"
}
