package donations

import (
	"errors"
	"fmt"
)

// Processor surcharge: 2.7% + $0.05, charged on top of the base amount so
// the net contribution equals what the donor intended.
const (
	feePercentMilli = 27   // 2.7% in thousandths
	feeFixedMilli   = 5000 // 5 cents over the same /1000 denominator
)

// MinimumDonationCents is the smallest accepted base amount ($1.00).
const MinimumDonationCents int64 = 100

var ErrInvalidAmount = errors.New("invalid donation amount")

// ChargeBreakdown is the quoted and charged split for one donation.
// TotalCents is what the card is charged; BaseAmountCents is what the
// organization receives.
type ChargeBreakdown struct {
	BaseAmountCents int64 `json:"base_amount_cents"`
	FeeCents        int64 `json:"fee_cents"`
	TotalCents      int64 `json:"total_cents"`
}

// ComputeCharge computes the processor fee and total for a base amount.
// The fee is round(base*0.027 + 5) cents, rounded half up, done entirely
// in integer arithmetic: the same call backs both the pre-checkout quote
// and the actual line item, and the two must never drift.
func ComputeCharge(baseAmountCents int64) (ChargeBreakdown, error) {
	if baseAmountCents < MinimumDonationCents {
		return ChargeBreakdown{}, fmt.Errorf("%w: minimum donation is $1.00, got %d cents", ErrInvalidAmount, baseAmountCents)
	}

	// base*27/1000 + 5 cents, over a common denominator of 1000,
	// +500 for half-up rounding.
	fee := (baseAmountCents*feePercentMilli + feeFixedMilli + 500) / 1000

	return ChargeBreakdown{
		BaseAmountCents: baseAmountCents,
		FeeCents:        fee,
		TotalCents:      baseAmountCents + fee,
	}, nil
}

// FormatUSD renders a cent amount as "$1,234.56". Both email renderers go
// through this so donor-facing and admin-facing amounts always agree.
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	dollars := cents / 100
	remainder := cents % 100

	digits := fmt.Sprintf("%d", dollars)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	return fmt.Sprintf("%s$%s.%02d", sign, grouped, remainder)
}
