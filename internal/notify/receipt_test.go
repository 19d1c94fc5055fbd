package notify_test

import (
	"testing"
	"time"

	"donation-app/internal/domain/donations"
	"donation-app/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiptInput() notify.ReceiptInput {
	return notify.ReceiptInput{
		Tier:          donations.TierCustom,
		AmountCents:   5000,
		SessionID:     "cs_rcpt_1",
		PublicSponsor: true,
		Date:          time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC),
		OrgName:       "Test Team",
		EIN:           "000000000",
	}
}

func TestReceiptCustomBelowBronzeSuppressesTierName(t *testing.T) {
	// A $50.00 public custom donation resolves below bronze: the generic
	// benefit list, and no tier name anywhere, public or not.
	subject, body, err := notify.RenderReceipt(receiptInput())
	require.NoError(t, err)

	assert.Equal(t, "Thank You for Your Sponsorship - Tax Receipt", subject)
	assert.NotContains(t, body, "Sponsorship Tier:")
	assert.NotContains(t, body, "Next Steps")
	assert.Contains(t, body, "$50.00")
	assert.Contains(t, body, "Our sincere gratitude for your support")
	assert.NotContains(t, body, "Logo on Website")
}

func TestReceiptPrivateTierDonation(t *testing.T) {
	in := receiptInput()
	in.Tier = donations.TierGold
	in.AmountCents = 300000
	in.PublicSponsor = false

	subject, body, err := notify.RenderReceipt(in)
	require.NoError(t, err)

	// Tier benefits are still earned; the tier name and next steps are not shown.
	assert.Equal(t, "Thank You for Your Sponsorship - Tax Receipt", subject)
	assert.NotContains(t, body, "Sponsorship Tier:")
	assert.NotContains(t, body, "Next Steps")
	assert.Contains(t, body, "Name on Team Trailer")
	assert.Contains(t, body, "Logo on Team Apparel")
}

func TestReceiptPublicTierDonation(t *testing.T) {
	in := receiptInput()
	in.Tier = donations.TierGold
	in.AmountCents = 300000

	subject, body, err := notify.RenderReceipt(in)
	require.NoError(t, err)

	assert.Equal(t, "Thank You for Your Gold Sponsorship - Tax Receipt", subject)
	assert.Contains(t, body, "Sponsorship Tier:")
	assert.Contains(t, body, "Gold")
	assert.Contains(t, body, "Next Steps")
	assert.Contains(t, body, "$3,000.00")
}

func TestReceiptCustomAmountClearingThreshold(t *testing.T) {
	// A custom $600 donation clears the bronze threshold: bronze benefits
	// and the bronze name (public donor), but "next steps" stays off —
	// that language only applies to explicit tier selections.
	in := receiptInput()
	in.AmountCents = 60000

	subject, body, err := notify.RenderReceipt(in)
	require.NoError(t, err)

	assert.Equal(t, "Thank You for Your Bronze Sponsorship - Tax Receipt", subject)
	assert.Contains(t, body, "Sponsorship Tier:")
	assert.Contains(t, body, "Bronze")
	assert.Contains(t, body, "Logo on Website")
	assert.NotContains(t, body, "Next Steps")
}

func TestReceiptFixedFacts(t *testing.T) {
	_, body, err := notify.RenderReceipt(receiptInput())
	require.NoError(t, err)

	assert.Contains(t, body, "EIN: 000000000")
	assert.Contains(t, body, "cs_rcpt_1")
	assert.Contains(t, body, "March 14, 2026")
	assert.Contains(t, body, "Test Team")
}
