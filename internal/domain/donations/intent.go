package donations

import (
	"errors"
	"fmt"
)

var ErrInvalidDonationIntent = errors.New("invalid donation intent")

type IntentKind string

const (
	IntentTier   IntentKind = "tier"
	IntentCustom IntentKind = "custom"
)

// Intent is a validated request to donate, either a fixed tier selection
// or a donor-chosen amount. Tier intents always carry exactly the tier's
// published minimum as their base amount.
type Intent struct {
	Kind            IntentKind
	Tier            Tier
	BaseAmountCents int64
	Currency        string
}

// NewTierIntent builds an intent for an explicit tier selection.
func NewTierIntent(tier Tier) (Intent, error) {
	base, ok := BaseAmount(tier)
	if !ok {
		return Intent{}, fmt.Errorf("%w: unknown tier %q", ErrInvalidDonationIntent, tier)
	}
	return Intent{
		Kind:            IntentTier,
		Tier:            tier,
		BaseAmountCents: base,
		Currency:        "usd",
	}, nil
}

// NewCustomIntent builds an intent for a donor-chosen amount in cents.
func NewCustomIntent(amountCents int64) (Intent, error) {
	intent := Intent{
		Kind:            IntentCustom,
		Tier:            TierCustom,
		BaseAmountCents: amountCents,
		Currency:        "usd",
	}
	if err := intent.Validate(); err != nil {
		return Intent{}, err
	}
	return intent, nil
}

// Validate enforces the intent invariants: a one-dollar minimum for every
// kind, and for tier intents a recognized tier whose published minimum
// equals the base amount exactly.
func (i Intent) Validate() error {
	if i.BaseAmountCents < MinimumDonationCents {
		return fmt.Errorf("%w: minimum donation is $1.00", ErrInvalidDonationIntent)
	}

	switch i.Kind {
	case IntentCustom:
		return nil
	case IntentTier:
		base, ok := BaseAmount(i.Tier)
		if !ok {
			return fmt.Errorf("%w: unknown tier %q", ErrInvalidDonationIntent, i.Tier)
		}
		if i.BaseAmountCents != base {
			return fmt.Errorf("%w: tier %s is priced at %d cents, got %d", ErrInvalidDonationIntent, i.Tier, base, i.BaseAmountCents)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown intent kind %q", ErrInvalidDonationIntent, i.Kind)
	}
}

// Label is the tier/custom marker carried in the success URL and session
// metadata.
func (i Intent) Label() string {
	if i.Kind == IntentTier {
		return string(i.Tier)
	}
	return string(TierCustom)
}
