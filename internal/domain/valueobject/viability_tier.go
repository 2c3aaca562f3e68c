package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ViabilityTier – immutable value object
// ---------------------------------------------------------------------------

// ViabilityTier is the affordability outcome of simulating one offer:
// affordable at the desired term, affordable only at a longer term, or not
// affordable within the lender's limits.
type ViabilityTier struct {
	value string
}

const (
	viabilityTierViable     = "VIABLE"
	viabilityTierExtendable = "EXTENDABLE"
	viabilityTierNotViable  = "NOT_VIABLE"
)

var (
	ViabilityTierViable     = ViabilityTier{value: viabilityTierViable}
	ViabilityTierExtendable = ViabilityTier{value: viabilityTierExtendable}
	ViabilityTierNotViable  = ViabilityTier{value: viabilityTierNotViable}
)

var validViabilityTiers = map[string]ViabilityTier{
	viabilityTierViable:     ViabilityTierViable,
	viabilityTierExtendable: ViabilityTierExtendable,
	viabilityTierNotViable:  ViabilityTierNotViable,
}

// NewViabilityTier creates a ViabilityTier from a raw string.
func NewViabilityTier(s string) (ViabilityTier, error) {
	v, ok := validViabilityTiers[s]
	if !ok {
		return ViabilityTier{}, fmt.Errorf("invalid viability tier: %q", s)
	}
	return v, nil
}

// String returns the string representation of the tier.
func (t ViabilityTier) String() string { return t.value }

// Equal reports whether two tiers are the same.
func (t ViabilityTier) Equal(other ViabilityTier) bool { return t.value == other.value }

// Priority returns the ranking priority of the tier; lower sorts first.
func (t ViabilityTier) Priority() int {
	switch t.value {
	case viabilityTierViable:
		return 0
	case viabilityTierExtendable:
		return 1
	default:
		return 2
	}
}
