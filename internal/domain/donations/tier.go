package donations

import "strings"

// Tier is a named sponsorship bracket. TierCustom labels donations below
// the bronze threshold or made without an explicit tier selection.
type Tier string

const (
	TierCustom   Tier = "custom"
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
)

// tierMinimums holds each tier's published minimum in cents, lowest first.
var tierMinimums = []struct {
	tier Tier
	min  int64
}{
	{TierBronze, 50000},    // $500+
	{TierSilver, 100000},   // $1,000+
	{TierGold, 300000},     // $3,000+
	{TierPlatinum, 500000}, // $5,000+
	{TierDiamond, 1000000}, // $10,000+
}

// ParseTier maps a wire label to a known tier.
func ParseTier(s string) (Tier, bool) {
	switch t := Tier(strings.ToLower(strings.TrimSpace(s))); t {
	case TierBronze, TierSilver, TierGold, TierPlatinum, TierDiamond, TierCustom:
		return t, true
	}
	return TierCustom, false
}

// Resolve returns the highest tier whose minimum is at or below the
// amount, or TierCustom below the bronze threshold. This is the single
// source of threshold truth: checkout-build and receipt rendering both
// call it rather than re-deriving cutoffs.
func Resolve(amountCents int64) Tier {
	resolved := TierCustom
	for _, entry := range tierMinimums {
		if amountCents >= entry.min {
			resolved = entry.tier
		}
	}
	return resolved
}

// BaseAmount returns a tier's published minimum. A tier selection is a
// fixed-price intent: the donor pays exactly this base, never a derived
// value. Returns false for TierCustom or an unknown tier.
func BaseAmount(t Tier) (int64, bool) {
	for _, entry := range tierMinimums {
		if entry.tier == t {
			return entry.min, true
		}
	}
	return 0, false
}

// Display returns the capitalized tier name used in emails.
func Display(t Tier) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var tierBenefits = map[Tier][]string{
	TierBronze: {
		"Tax Deduction",
		"Car Updates via Newsletter",
		"Logo on Website",
	},
	TierSilver: {
		"Tax Deduction",
		"Car Updates via Newsletter",
		"Logo on Website",
		"Featured in our Newsletter",
		"Social Media Recognition",
	},
	TierGold: {
		"Tax Deduction",
		"Car Updates via Newsletter",
		"Logo on Website",
		"Featured in our Newsletter",
		"Social Media Recognition",
		"Name on Team Trailer",
		"Logo on Banner",
		"Logo on Team Apparel",
	},
	TierPlatinum: {
		"Tax Deduction",
		"Car Updates via Newsletter",
		"Logo on Website",
		"Featured in our Newsletter",
		"Social Media Recognition",
		"Name on Team Trailer",
		"Logo on Banner",
		"Logo on Team Apparel",
		"Name on Car",
		"Media Coverage",
		"Priority Placement and Sizing of Logo on Car",
	},
	TierDiamond: {
		"Tax Deduction",
		"Car Updates via Newsletter",
		"Logo on Website",
		"Featured in our Newsletter",
		"Social Media Recognition",
		"Name on Team Trailer",
		"Logo on Banner",
		"Logo on Team Apparel",
		"Name on Car",
		"Media Coverage",
		"Priority Placement and Sizing of Logo on Car",
		"Dedicated Paragraph on Website",
		"Media Mentions",
	},
	TierCustom: {
		"Tax Deduction",
		"Our sincere gratitude for your support",
	},
}

// Benefits returns the fixed benefit list for a tier. Unknown tiers get
// the generic custom list.
func Benefits(t Tier) []string {
	if b, ok := tierBenefits[t]; ok {
		return b
	}
	return tierBenefits[TierCustom]
}
