package service

import (
	"strings"

	"github.com/predialtech/financing-service/internal/domain/model"
	"github.com/predialtech/financing-service/internal/domain/valueobject"
)

// Keyword tables mapping enum values to the lowercase synonyms looked for in
// the free-text eligibility columns of the catalog. Unmapped values fall back
// to an empty list, which matches every offer.
var borrowerProfileKeywords = map[valueobject.BorrowerProfile][]string{
	valueobject.BorrowerProfileSalaried:               {"salaried", "employee", "payroll"},
	valueobject.BorrowerProfileSelfEmployedSimplified: {"self-employed", "simplified regime", "freelancer"},
	valueobject.BorrowerProfileSelfEmployedRegistered: {"self-employed", "registered", "sole trader"},
	valueobject.BorrowerProfilePublicSector:           {"public sector", "civil servant", "government"},
}

var fundUseKeywords = map[valueobject.FundUse][]string{
	valueobject.FundUseFirstHome:    {"first home", "primary residence", "own home"},
	valueobject.FundUseSecondHome:   {"second home", "holiday home"},
	valueobject.FundUseConstruction: {"construction", "building"},
	valueobject.FundUseRenovation:   {"renovation", "remodel", "improvement"},
	valueobject.FundUseOther:        {},
}

// genericMarkers in an eligibility text mean the offer applies to everyone.
var genericMarkers = []string{"all", "everyone"}

// CatalogFilter selects the catalog offers whose free-text eligibility
// descriptions cover a given inquiry.
type CatalogFilter struct{}

func NewCatalogFilter() *CatalogFilter {
	return &CatalogFilter{}
}

// Filter returns the offers matching both the borrower profile and the fund
// use of the inquiry, preserving catalog order.
func (f *CatalogFilter) Filter(inquiry model.MortgageInquiry, offers []model.MortgageOffer) []model.MortgageOffer {
	profileKeywords := borrowerProfileKeywords[inquiry.BorrowerProfile()]
	useKeywords := fundUseKeywords[inquiry.FundUse()]

	matched := make([]model.MortgageOffer, 0, len(offers))
	for _, offer := range offers {
		if !matchesEligibilityText(offer.EligibleBorrowerProfiles, profileKeywords) {
			continue
		}
		if !matchesEligibilityText(offer.EligibleFundUses, useKeywords) {
			continue
		}
		matched = append(matched, offer)
	}
	return matched
}

// matchesEligibilityText applies the keyword rule to one eligibility column.
// An empty text matches everyone; incompletely curated catalog rows therefore
// pass the filter rather than disappearing from results.
func matchesEligibilityText(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}

	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return true
	}

	for _, marker := range genericMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	for _, kw := range keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}
