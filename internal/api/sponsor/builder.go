package sponsor

import (
	"fmt"
	"strconv"

	"donation-app/internal/domain/donations"
	stripeinfra "donation-app/internal/infra/stripe"

	stripeapi "github.com/stripe/stripe-go/v82"
)

// BuildSessionParams assembles the hosted-checkout request for a
// validated intent. The single line item is priced at the fee-inclusive
// total, never the bare base amount, with the split spelled out in the
// description the donor sees on the Stripe page.
func BuildSessionParams(intent donations.Intent, breakdown donations.ChargeBreakdown, appURL string) *stripeapi.CheckoutSessionParams {
	productName := "Custom Sponsorship Donation"
	if intent.Kind == donations.IntentTier {
		productName = fmt.Sprintf("%s Sponsorship", donations.Display(intent.Tier))
	}
	description := fmt.Sprintf("%s donation plus %s processing fee",
		donations.FormatUSD(breakdown.BaseAmountCents),
		donations.FormatUSD(breakdown.FeeCents))

	// {CHECKOUT_SESSION_ID} is a literal placeholder Stripe substitutes
	// on redirect.
	successURL := fmt.Sprintf("%s/sponsor/success?tier=%s&amount=%d&session_id={CHECKOUT_SESSION_ID}",
		appURL, intent.Label(), breakdown.BaseAmountCents)

	return &stripeapi.CheckoutSessionParams{
		Mode:       stripeapi.String(string(stripeapi.CheckoutSessionModePayment)),
		SuccessURL: stripeapi.String(successURL),
		CancelURL:  stripeapi.String(appURL + "/sponsor"),

		LineItems: []*stripeapi.CheckoutSessionLineItemParams{
			{
				PriceData: &stripeapi.CheckoutSessionLineItemPriceDataParams{
					Currency: stripeapi.String(intent.Currency),
					ProductData: &stripeapi.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripeapi.String(productName),
						Description: stripeapi.String(description),
					},
					UnitAmount: stripeapi.Int64(breakdown.TotalCents),
				},
				Quantity: stripeapi.Int64(1),
			},
		},

		BillingAddressCollection: stripeapi.String(string(stripeapi.CheckoutSessionBillingAddressCollectionRequired)),
		PhoneNumberCollection: &stripeapi.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripeapi.Bool(true),
		},

		CustomFields: []*stripeapi.CheckoutSessionCustomFieldParams{
			{
				Key: stripeapi.String(fieldFullName),
				Label: &stripeapi.CheckoutSessionCustomFieldLabelParams{
					Type:   stripeapi.String("custom"),
					Custom: stripeapi.String("Full Name"),
				},
				Type:     stripeapi.String("text"),
				Optional: stripeapi.Bool(false),
			},
			{
				Key: stripeapi.String(fieldPublicSponsor),
				Label: &stripeapi.CheckoutSessionCustomFieldLabelParams{
					Type:   stripeapi.String("custom"),
					Custom: stripeapi.String("I want to be recognized as a public sponsor"),
				},
				Type: stripeapi.String("dropdown"),
				Dropdown: &stripeapi.CheckoutSessionCustomFieldDropdownParams{
					Options: []*stripeapi.CheckoutSessionCustomFieldDropdownOptionParams{
						{Label: stripeapi.String("Yes, recognize me publicly"), Value: stripeapi.String("yes")},
						{Label: stripeapi.String("No, I'm donating privately"), Value: stripeapi.String("no")},
					},
				},
				Optional: stripeapi.Bool(false),
			},
		},
	}
}

// CreateCheckoutSession validates the intent, creates the hosted-checkout
// session, then attaches {tier, amount} as session metadata. The metadata,
// not client-supplied redirect state, is what verification trusts when the
// session is read back. No session is created for an invalid intent.
func CreateCheckoutSession(gw stripeinfra.Processor, intent donations.Intent, appURL string) (*stripeapi.CheckoutSession, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}

	breakdown, err := donations.ComputeCharge(intent.BaseAmountCents)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", donations.ErrInvalidDonationIntent, err)
	}

	session, err := gw.CreateSession(BuildSessionParams(intent, breakdown, appURL))
	if err != nil {
		return nil, fmt.Errorf("%w: creating checkout session: %v", donations.ErrUpstreamUnavailable, err)
	}

	// Metadata always records the base amount, so receipts show the
	// donor's intended contribution rather than the fee-inclusive total.
	if _, err := gw.UpdateSessionMetadata(session.ID, map[string]string{
		metadataTier:   intent.Label(),
		metadataAmount: strconv.FormatInt(breakdown.BaseAmountCents, 10),
	}); err != nil {
		return nil, fmt.Errorf("%w: attaching session metadata: %v", donations.ErrUpstreamUnavailable, err)
	}

	return session, nil
}
