package stripe_test

import (
	"testing"

	stripeinfra "donation-app/internal/infra/stripe"

	stripeapi "github.com/stripe/stripe-go/v82"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePaymentStatus(t *testing.T) {
	assert.Equal(t, "paid", stripeinfra.NormalizePaymentStatus(stripeapi.CheckoutSessionPaymentStatusPaid))
	assert.Equal(t, "unpaid", stripeinfra.NormalizePaymentStatus(stripeapi.CheckoutSessionPaymentStatusUnpaid))
	// A fully discounted session is not a settled donation.
	assert.Equal(t, "unpaid", stripeinfra.NormalizePaymentStatus(stripeapi.CheckoutSessionPaymentStatusNoPaymentRequired))
	assert.Equal(t, "unknown", stripeinfra.NormalizePaymentStatus(""))
}

func TestIsPaid(t *testing.T) {
	assert.True(t, stripeinfra.IsPaid(stripeapi.CheckoutSessionPaymentStatusPaid))
	assert.False(t, stripeinfra.IsPaid(stripeapi.CheckoutSessionPaymentStatusUnpaid))
	assert.False(t, stripeinfra.IsPaid(""))
}
