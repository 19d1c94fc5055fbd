package sponsor_test

import (
	"testing"

	"donation-app/internal/api/sponsor"
	"donation-app/internal/domain/donations"

	stripeapi "github.com/stripe/stripe-go/v82"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- mock payment processor ----

type mockProcessor struct {
	createdParams *stripeapi.CheckoutSessionParams
	createSession *stripeapi.CheckoutSession
	createErr     error
	updatedID     string
	updatedMeta   map[string]string
	updateErr     error
	getSession    *stripeapi.CheckoutSession
	getErr        error
}

func (m *mockProcessor) CreateSession(params *stripeapi.CheckoutSessionParams) (*stripeapi.CheckoutSession, error) {
	m.createdParams = params
	return m.createSession, m.createErr
}

func (m *mockProcessor) UpdateSessionMetadata(id string, metadata map[string]string) (*stripeapi.CheckoutSession, error) {
	m.updatedID = id
	m.updatedMeta = metadata
	return m.createSession, m.updateErr
}

func (m *mockProcessor) GetExpandedSession(id string) (*stripeapi.CheckoutSession, error) {
	return m.getSession, m.getErr
}

func TestCreateCheckoutSessionRejectsInvalidIntent(t *testing.T) {
	gw := &mockProcessor{}

	intent := donations.Intent{Kind: donations.IntentCustom, BaseAmountCents: 0, Currency: "usd"}
	_, err := sponsor.CreateCheckoutSession(gw, intent, "https://donate.example.org")

	assert.ErrorIs(t, err, donations.ErrInvalidDonationIntent)
	assert.Nil(t, gw.createdParams, "no session may be created for an invalid intent")
}

func TestCreateCheckoutSessionCustomAmount(t *testing.T) {
	gw := &mockProcessor{
		createSession: &stripeapi.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.test/pay"},
	}

	intent, err := donations.NewCustomIntent(100)
	require.NoError(t, err)

	session, err := sponsor.CreateCheckoutSession(gw, intent, "https://donate.example.org")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", session.ID)

	params := gw.createdParams
	require.NotNil(t, params)
	require.Len(t, params.LineItems, 1)

	breakdown, err := donations.ComputeCharge(100)
	require.NoError(t, err)
	assert.Equal(t, breakdown.TotalCents, *params.LineItems[0].PriceData.UnitAmount,
		"the line item is priced at base plus fee, never the bare base")

	assert.Equal(t, "https://donate.example.org/sponsor/success?tier=custom&amount=100&session_id={CHECKOUT_SESSION_ID}", *params.SuccessURL)
	assert.Equal(t, "https://donate.example.org/sponsor", *params.CancelURL)
	assert.Equal(t, string(stripeapi.CheckoutSessionBillingAddressCollectionRequired), *params.BillingAddressCollection)
	assert.True(t, *params.PhoneNumberCollection.Enabled)

	require.Len(t, params.CustomFields, 2)
	assert.Equal(t, "full_name", *params.CustomFields[0].Key)
	assert.False(t, *params.CustomFields[0].Optional)
	assert.Equal(t, "public_sponsor", *params.CustomFields[1].Key)
	assert.Len(t, params.CustomFields[1].Dropdown.Options, 2)

	// Metadata, not redirect query state, is what read-back trusts.
	assert.Equal(t, "cs_test_123", gw.updatedID)
	assert.Equal(t, map[string]string{"tier": "custom", "amount": "100"}, gw.updatedMeta)
}

func TestCreateCheckoutSessionTierIntent(t *testing.T) {
	gw := &mockProcessor{
		createSession: &stripeapi.CheckoutSession{ID: "cs_test_gold", URL: "https://checkout.stripe.test/pay"},
	}

	intent, err := donations.NewTierIntent(donations.TierGold)
	require.NoError(t, err)

	_, err = sponsor.CreateCheckoutSession(gw, intent, "https://donate.example.org")
	require.NoError(t, err)

	params := gw.createdParams
	require.NotNil(t, params)
	assert.Equal(t, "Gold Sponsorship", *params.LineItems[0].PriceData.ProductData.Name)

	breakdown, err := donations.ComputeCharge(300000)
	require.NoError(t, err)
	assert.Equal(t, breakdown.TotalCents, *params.LineItems[0].PriceData.UnitAmount)

	assert.Equal(t, map[string]string{"tier": "gold", "amount": "300000"}, gw.updatedMeta)
}

func TestCreateCheckoutSessionUpstreamFailure(t *testing.T) {
	gw := &mockProcessor{createErr: assert.AnError}

	intent, err := donations.NewCustomIntent(5000)
	require.NoError(t, err)

	_, err = sponsor.CreateCheckoutSession(gw, intent, "https://donate.example.org")
	assert.ErrorIs(t, err, donations.ErrUpstreamUnavailable)
}
