package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MortgageOffer is one row of the mortgage product catalog. The catalog is
// curated by the platform's product back office and is read-only to the
// financing engine; offers are plain snapshots, never mutated here.
//
// The five fields the simulation depends on are nullable because catalog
// rows are frequently entered in stages. An offer missing any of them is
// skipped by the engine rather than treated as an error.
type MortgageOffer struct {
	ID                       string           `json:"id"`
	TenantID                 string           `json:"tenant_id"`
	LenderCode               int              `json:"lender_code"`
	LenderName               string           `json:"lender_name"`
	ProductName              string           `json:"product_name"`
	MaxLoanToValuePct        *decimal.Decimal `json:"max_loan_to_value_pct"`
	MaxDebtToIncomePct       *decimal.Decimal `json:"max_debt_to_income_pct"`
	MaxLoanAmount            *decimal.Decimal `json:"max_loan_amount"`
	MaxTermMonths            *int             `json:"max_term_months"`
	AnnualEffectiveRate      *decimal.Decimal `json:"annual_effective_rate"`
	TotalCostOfCredit        *decimal.Decimal `json:"total_cost_of_credit,omitempty"`
	EligibleBorrowerProfiles string           `json:"eligible_borrower_profiles"`
	EligibleFundUses         string           `json:"eligible_fund_uses"`
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                time.Time        `json:"updated_at"`
}

// IsSimulatable reports whether the offer carries every numeric field the
// affordability calculation needs.
func (o MortgageOffer) IsSimulatable() bool {
	return o.AnnualEffectiveRate != nil &&
		o.MaxLoanToValuePct != nil &&
		o.MaxDebtToIncomePct != nil &&
		o.MaxLoanAmount != nil &&
		o.MaxTermMonths != nil
}
