package model

import (
	"github.com/shopspring/decimal"

	"github.com/predialtech/financing-service/internal/domain/valueobject"
)

// SimulationResult is the affordability outcome for one offer. Results are
// immutable snapshots produced for a single simulation call and consumed
// directly by the caller; they have no lifecycle beyond that call.
//
// RecommendedTermMonths is nil for VIABLE results (the desired term already
// works), the minimum affordable term for EXTENDABLE results, and the
// lender's maximum term for NOT_VIABLE results (the practical ceiling, shown
// even though it does not resolve affordability). Use the constructors below
// so that pairing stays consistent.
type SimulationResult struct {
	LenderCode               int
	LenderName               string
	ProductName              string
	FinancedAmount           decimal.Decimal
	RequiredDownPayment      decimal.Decimal
	InstallmentAtDesiredTerm decimal.Decimal
	MaxAllowedInstallment    decimal.Decimal
	DesiredTermMonths        int
	RecommendedTermMonths    *int
	MaxTermMonths            int
	Tier                     valueobject.ViabilityTier
	MonthlyRatePct           decimal.Decimal
	AnnualRatePct            decimal.Decimal
	TotalCostOfCreditPct     *decimal.Decimal

	// Offer is a back-reference to the source catalog row, kept for display
	// purposes only; it takes no part in aggregation or ranking.
	Offer MortgageOffer
}

// SimulationFigures carries the tier-independent numbers computed for one
// offer before classification.
type SimulationFigures struct {
	FinancedAmount           decimal.Decimal
	RequiredDownPayment      decimal.Decimal
	InstallmentAtDesiredTerm decimal.Decimal
	MaxAllowedInstallment    decimal.Decimal
	DesiredTermMonths        int
	MonthlyRatePct           decimal.Decimal
	AnnualRatePct            decimal.Decimal
}

// NewViableResult builds a VIABLE result; no recommended term applies.
func NewViableResult(offer MortgageOffer, f SimulationFigures) SimulationResult {
	return newResult(offer, f, valueobject.ViabilityTierViable, nil)
}

// NewExtendableResult builds an EXTENDABLE result carrying the minimum term
// at which the installment fits under the income cap.
func NewExtendableResult(offer MortgageOffer, f SimulationFigures, recommendedTermMonths int) SimulationResult {
	return newResult(offer, f, valueobject.ViabilityTierExtendable, &recommendedTermMonths)
}

// NewNotViableResult builds a NOT_VIABLE result; the recommended term is
// pinned to the lender's maximum.
func NewNotViableResult(offer MortgageOffer, f SimulationFigures) SimulationResult {
	maxTerm := *offer.MaxTermMonths
	return newResult(offer, f, valueobject.ViabilityTierNotViable, &maxTerm)
}

func newResult(
	offer MortgageOffer,
	f SimulationFigures,
	tier valueobject.ViabilityTier,
	recommendedTermMonths *int,
) SimulationResult {
	var tccPct *decimal.Decimal
	if offer.TotalCostOfCredit != nil {
		v := offer.TotalCostOfCredit.Mul(decimal.NewFromInt(100))
		tccPct = &v
	}

	return SimulationResult{
		LenderCode:               offer.LenderCode,
		LenderName:               offer.LenderName,
		ProductName:              offer.ProductName,
		FinancedAmount:           f.FinancedAmount,
		RequiredDownPayment:      f.RequiredDownPayment,
		InstallmentAtDesiredTerm: f.InstallmentAtDesiredTerm,
		MaxAllowedInstallment:    f.MaxAllowedInstallment,
		DesiredTermMonths:        f.DesiredTermMonths,
		RecommendedTermMonths:    recommendedTermMonths,
		MaxTermMonths:            *offer.MaxTermMonths,
		Tier:                     tier,
		MonthlyRatePct:           f.MonthlyRatePct,
		AnnualRatePct:            f.AnnualRatePct,
		TotalCostOfCreditPct:     tccPct,
		Offer:                    offer,
	}
}
