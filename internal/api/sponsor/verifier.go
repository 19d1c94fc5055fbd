package sponsor

import (
	"fmt"
	"strconv"

	"donation-app/internal/domain/donations"
	stripeinfra "donation-app/internal/infra/stripe"

	stripeapi "github.com/stripe/stripe-go/v82"
)

const (
	fieldFullName      = "full_name"
	fieldPublicSponsor = "public_sponsor"

	metadataTier   = "tier"
	metadataAmount = "amount"
)

// VerifyPayment reads a checkout session back and refuses to proceed for
// anything other than a paid session. No receipt is ever produced for an
// unpaid or pending session.
func VerifyPayment(gw stripeinfra.Processor, sessionID string) (*donations.CompletedPayment, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: missing session id", donations.ErrPaymentNotCompleted)
	}

	session, err := gw.GetExpandedSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching session %s: %v", donations.ErrUpstreamUnavailable, sessionID, err)
	}

	if !stripeinfra.IsPaid(session.PaymentStatus) {
		return nil, fmt.Errorf("%w: session %s has status %q", donations.ErrPaymentNotCompleted, sessionID, session.PaymentStatus)
	}

	return extractPayment(session)
}

// extractPayment builds the immutable CompletedPayment from a paid
// session. The session's own metadata is the source of truth for tier and
// amount; the processor-computed total is only a fallback for sessions
// that predate the metadata attach.
func extractPayment(session *stripeapi.CheckoutSession) (*donations.CompletedPayment, error) {
	amount := session.AmountTotal
	if raw, ok := session.Metadata[metadataAmount]; ok && raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("session %s has malformed amount metadata %q: %w", session.ID, raw, err)
		}
		amount = parsed
	}

	tier := donations.TierCustom
	if raw, ok := session.Metadata[metadataTier]; ok {
		if parsed, known := donations.ParseTier(raw); known {
			tier = parsed
		}
	}

	payment := &donations.CompletedPayment{
		SessionID:     session.ID,
		PaymentStatus: stripeinfra.NormalizePaymentStatus(session.PaymentStatus),
		FullName:      customFieldText(session, fieldFullName),
		PublicSponsor: publicSponsorChoice(session),
		AmountCents:   amount,
		Tier:          tier,
	}

	details := session.CustomerDetails
	if details == nil || details.Email == "" {
		return nil, fmt.Errorf("session %s is missing the donor email", session.ID)
	}
	payment.DonorEmail = details.Email
	payment.DonorPhone = details.Phone
	if addr := details.Address; addr != nil {
		payment.BillingAddress = donations.BillingAddress{
			Line1:      addr.Line1,
			Line2:      addr.Line2,
			City:       addr.City,
			State:      addr.State,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
		}
	}

	return payment, nil
}

// customFieldText finds a collected text field by key.
func customFieldText(session *stripeapi.CheckoutSession, key string) string {
	for _, field := range session.CustomFields {
		if field.Key == key && field.Text != nil {
			return field.Text.Value
		}
	}
	return ""
}

// publicSponsorChoice is the one place the recognition preference is read
// and defaulted. An absent or unrecognized value means private: the donor
// never gets public exposure they did not explicitly ask for.
func publicSponsorChoice(session *stripeapi.CheckoutSession) bool {
	for _, field := range session.CustomFields {
		if field.Key == fieldPublicSponsor && field.Dropdown != nil {
			return field.Dropdown.Value == "yes"
		}
	}
	return false
}
