package service

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/predialtech/financing-service/internal/domain/model"
	"github.com/predialtech/financing-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// SimulationEngine – domain service for mortgage viability simulation
// ---------------------------------------------------------------------------

var (
	// ErrEmptyCatalog is returned when the tenant has no offers at all.
	ErrEmptyCatalog = errors.New("mortgage offer catalog is empty")

	// ErrNoMatchingOffers is returned when filtering or completeness checks
	// leave nothing to simulate.
	ErrNoMatchingOffers = errors.New("no offers match the inquiry")
)

// SimulationEngine runs the full viability pipeline for one inquiry:
// eligibility filtering, per-offer affordability classification, best-offer
// selection per lender, and final ranking. It is a pure computation over the
// in-memory catalog; fetching the catalog is the caller's concern.
type SimulationEngine struct {
	filter *CatalogFilter
}

func NewSimulationEngine(filter *CatalogFilter) *SimulationEngine {
	return &SimulationEngine{filter: filter}
}

// Simulate produces the ranked viability results for the inquiry, one per
// lender. Offers missing a required numeric field are skipped silently; they
// are a catalog curation problem, not a borrower-facing error.
func (e *SimulationEngine) Simulate(
	inquiry model.MortgageInquiry,
	catalog []model.MortgageOffer,
) ([]model.SimulationResult, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	eligible := e.filter.Filter(inquiry, catalog)
	if len(eligible) == 0 {
		return nil, ErrNoMatchingOffers
	}

	results := make([]model.SimulationResult, 0, len(eligible))
	for _, offer := range eligible {
		if !offer.IsSimulatable() {
			continue
		}
		results = append(results, e.Classify(offer, inquiry))
	}
	if len(results) == 0 {
		return nil, ErrNoMatchingOffers
	}

	best := selectBestPerLender(results)
	rank(best)
	return best, nil
}

// Classify computes the affordability outcome of a single offer. The offer
// must be simulatable; callers filter beforehand.
func (e *SimulationEngine) Classify(offer model.MortgageOffer, inquiry model.MortgageInquiry) model.SimulationResult {
	hundred := decimal.NewFromInt(100)

	// Financed amount is capped both by the loan-to-value ratio and by the
	// lender's absolute ceiling.
	byLTV := inquiry.PropertyValue().Mul(*offer.MaxLoanToValuePct).Div(hundred)
	financed := decimal.Min(byLTV, *offer.MaxLoanAmount)

	downPayment := inquiry.PropertyValue().Sub(financed)
	if downPayment.LessThan(decimal.Zero) {
		// Structurally impossible with LTV <= 100, clamp anyway so a bad
		// catalog row never renders a negative down payment.
		downPayment = decimal.Zero
	}

	annualRate := offer.AnnualEffectiveRate.InexactFloat64()
	monthlyRate := MonthlyRate(annualRate)

	maxInstallment := inquiry.MonthlyIncome().Mul(*offer.MaxDebtToIncomePct).Div(hundred)
	installment := Installment(financed, monthlyRate, inquiry.DesiredTermMonths())

	figures := model.SimulationFigures{
		FinancedAmount:           financed.Round(2),
		RequiredDownPayment:      downPayment.Round(2),
		InstallmentAtDesiredTerm: installment,
		MaxAllowedInstallment:    maxInstallment.Round(2),
		DesiredTermMonths:        inquiry.DesiredTermMonths(),
		MonthlyRatePct:           decimal.NewFromFloat(monthlyRate * 100).Round(4),
		AnnualRatePct:            offer.AnnualEffectiveRate.Mul(hundred).Round(2),
	}

	if installment.LessThanOrEqual(maxInstallment) {
		return model.NewViableResult(offer, figures)
	}

	candidateTerm, ok := MinimumTermForInstallmentCap(financed, monthlyRate, maxInstallment)
	if ok && candidateTerm <= *offer.MaxTermMonths {
		return model.NewExtendableResult(offer, figures, candidateTerm)
	}
	return model.NewNotViableResult(offer, figures)
}

// selectBestPerLender reduces the results to one per lender code, keeping
// first-encountered (catalog) order across lenders. Within a lender the tier
// order is strict: any VIABLE offer beats every EXTENDABLE one, which beats
// every NOT_VIABLE one, regardless of amounts.
func selectBestPerLender(results []model.SimulationResult) []model.SimulationResult {
	best := make([]model.SimulationResult, 0, len(results))
	indexByLender := make(map[int]int, len(results))

	for _, r := range results {
		i, seen := indexByLender[r.LenderCode]
		if !seen {
			indexByLender[r.LenderCode] = len(best)
			best = append(best, r)
			continue
		}
		if betterWithinLender(r, best[i]) {
			best[i] = r
		}
	}
	return best
}

// betterWithinLender reports whether candidate should replace current as a
// lender's representative. Ties keep the earlier result.
func betterWithinLender(candidate, current model.SimulationResult) bool {
	if cp, bp := candidate.Tier.Priority(), current.Tier.Priority(); cp != bp {
		return cp < bp
	}

	// Within EXTENDABLE the shorter recommended term wins; within the other
	// tiers the cheaper installment wins.
	if candidate.Tier.Equal(valueobject.ViabilityTierExtendable) {
		return *candidate.RecommendedTermMonths < *current.RecommendedTermMonths
	}
	return candidate.InstallmentAtDesiredTerm.LessThan(current.InstallmentAtDesiredTerm)
}

// rank sorts in place by (tier priority, installment at desired term),
// ascending and stable.
func rank(results []model.SimulationResult) {
	sort.SliceStable(results, func(i, j int) bool {
		pi, pj := results[i].Tier.Priority(), results[j].Tier.Priority()
		if pi != pj {
			return pi < pj
		}
		return results[i].InstallmentAtDesiredTerm.LessThan(results[j].InstallmentAtDesiredTerm)
	})
}
