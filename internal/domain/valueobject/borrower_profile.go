package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// BorrowerProfile – immutable value object
// ---------------------------------------------------------------------------

// BorrowerProfile represents the employment situation a borrower declares on
// a financing inquiry.
type BorrowerProfile struct {
	value string
}

const (
	borrowerProfileSalaried               = "SALARIED_EMPLOYEE"
	borrowerProfileSelfEmployedSimplified = "SELF_EMPLOYED_SIMPLIFIED"
	borrowerProfileSelfEmployedRegistered = "SELF_EMPLOYED_REGISTERED"
	borrowerProfilePublicSector           = "PUBLIC_SECTOR_EMPLOYEE"
)

var (
	BorrowerProfileSalaried               = BorrowerProfile{value: borrowerProfileSalaried}
	BorrowerProfileSelfEmployedSimplified = BorrowerProfile{value: borrowerProfileSelfEmployedSimplified}
	BorrowerProfileSelfEmployedRegistered = BorrowerProfile{value: borrowerProfileSelfEmployedRegistered}
	BorrowerProfilePublicSector           = BorrowerProfile{value: borrowerProfilePublicSector}
)

var validBorrowerProfiles = map[string]BorrowerProfile{
	borrowerProfileSalaried:               BorrowerProfileSalaried,
	borrowerProfileSelfEmployedSimplified: BorrowerProfileSelfEmployedSimplified,
	borrowerProfileSelfEmployedRegistered: BorrowerProfileSelfEmployedRegistered,
	borrowerProfilePublicSector:           BorrowerProfilePublicSector,
}

// NewBorrowerProfile creates a BorrowerProfile from a raw string.
func NewBorrowerProfile(s string) (BorrowerProfile, error) {
	v, ok := validBorrowerProfiles[s]
	if !ok {
		return BorrowerProfile{}, fmt.Errorf("invalid borrower profile: %q", s)
	}
	return v, nil
}

// String returns the string representation of the profile.
func (p BorrowerProfile) String() string { return p.value }

// Equal reports whether two profiles are the same.
func (p BorrowerProfile) Equal(other BorrowerProfile) bool { return p.value == other.value }
