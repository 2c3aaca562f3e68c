package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// FundUse – immutable value object
// ---------------------------------------------------------------------------

// FundUse represents the declared purpose of the financed amount.
type FundUse struct {
	value string
}

const (
	fundUseFirstHome    = "FIRST_HOME"
	fundUseSecondHome   = "SECOND_HOME"
	fundUseConstruction = "CONSTRUCTION"
	fundUseRenovation   = "RENOVATION"
	fundUseOther        = "OTHER"
)

var (
	FundUseFirstHome    = FundUse{value: fundUseFirstHome}
	FundUseSecondHome   = FundUse{value: fundUseSecondHome}
	FundUseConstruction = FundUse{value: fundUseConstruction}
	FundUseRenovation   = FundUse{value: fundUseRenovation}
	FundUseOther        = FundUse{value: fundUseOther}
)

var validFundUses = map[string]FundUse{
	fundUseFirstHome:    FundUseFirstHome,
	fundUseSecondHome:   FundUseSecondHome,
	fundUseConstruction: FundUseConstruction,
	fundUseRenovation:   FundUseRenovation,
	fundUseOther:        FundUseOther,
}

// NewFundUse creates a FundUse from a raw string.
func NewFundUse(s string) (FundUse, error) {
	v, ok := validFundUses[s]
	if !ok {
		return FundUse{}, fmt.Errorf("invalid fund use: %q", s)
	}
	return v, nil
}

// String returns the string representation of the fund use.
func (f FundUse) String() string { return f.value }

// Equal reports whether two fund uses are the same.
func (f FundUse) Equal(other FundUse) bool { return f.value == other.value }
