package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// SimulateFinancingRequest carries one borrower inquiry from the financing
// form.
type SimulateFinancingRequest struct {
	TenantID          string          `json:"tenant_id"`
	PropertyValue     decimal.Decimal `json:"property_value"`
	MonthlyIncome     decimal.Decimal `json:"monthly_income"`
	DesiredTermMonths int             `json:"desired_term_months"`
	BorrowerProfile   string          `json:"borrower_profile"`
	FundUse           string          `json:"fund_use"`
}

// ListOffersRequest identifies the tenant whose catalog to list.
type ListOffersRequest struct {
	TenantID string `json:"tenant_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// Structured failure reasons for a simulation that produced no results.
const (
	ReasonEmptyCatalog     = "EMPTY_CATALOG"
	ReasonNoMatchingOffers = "NO_MATCHING_OFFERS"
)

// SimulationResultResponse is one ranked row of the simulation output.
type SimulationResultResponse struct {
	LenderCode               int              `json:"lender_code"`
	LenderName               string           `json:"lender_name"`
	ProductName              string           `json:"product_name"`
	Tier                     string           `json:"tier"`
	FinancedAmount           decimal.Decimal  `json:"financed_amount"`
	RequiredDownPayment      decimal.Decimal  `json:"required_down_payment"`
	InstallmentAtDesiredTerm decimal.Decimal  `json:"installment_at_desired_term"`
	MaxAllowedInstallment    decimal.Decimal  `json:"max_allowed_installment"`
	DesiredTermMonths        int              `json:"desired_term_months"`
	RecommendedTermMonths    *int             `json:"recommended_term_months,omitempty"`
	MaxTermMonths            int              `json:"max_term_months"`
	MonthlyRatePct           decimal.Decimal  `json:"monthly_rate_pct"`
	AnnualRatePct            decimal.Decimal  `json:"annual_rate_pct"`
	TotalCostOfCreditPct     *decimal.Decimal `json:"total_cost_of_credit_pct,omitempty"`
}

// SimulationResponse is the full outcome of a simulation. Ok is false only
// for the structured no-result conditions; infrastructure failures surface as
// errors, not as a response.
type SimulationResponse struct {
	InquiryID string                     `json:"inquiry_id"`
	Ok        bool                       `json:"ok"`
	Reason    string                     `json:"reason,omitempty"`
	Results   []SimulationResultResponse `json:"results,omitempty"`
}

// OfferResponse is the external representation of one catalog offer.
type OfferResponse struct {
	ID                       string           `json:"id"`
	LenderCode               int              `json:"lender_code"`
	LenderName               string           `json:"lender_name"`
	ProductName              string           `json:"product_name"`
	MaxLoanToValuePct        *decimal.Decimal `json:"max_loan_to_value_pct,omitempty"`
	MaxDebtToIncomePct       *decimal.Decimal `json:"max_debt_to_income_pct,omitempty"`
	MaxLoanAmount            *decimal.Decimal `json:"max_loan_amount,omitempty"`
	MaxTermMonths            *int             `json:"max_term_months,omitempty"`
	AnnualEffectiveRate      *decimal.Decimal `json:"annual_effective_rate,omitempty"`
	TotalCostOfCredit        *decimal.Decimal `json:"total_cost_of_credit,omitempty"`
	EligibleBorrowerProfiles string           `json:"eligible_borrower_profiles"`
	EligibleFundUses         string           `json:"eligible_fund_uses"`
	Simulatable              bool             `json:"simulatable"`
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                time.Time        `json:"updated_at"`
}

// ListOffersResponse is the catalog listing for a tenant.
type ListOffersResponse struct {
	Offers []OfferResponse `json:"offers"`
}
