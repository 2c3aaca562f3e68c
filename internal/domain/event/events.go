package event

import (
	"github.com/shopspring/decimal"

	"github.com/predialtech/financing-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Financing Simulation Events
// ---------------------------------------------------------------------------

// SimulationCompleted is raised when an inquiry produced a ranked result set.
type SimulationCompleted struct {
	events.BaseEvent
	PropertyValue     decimal.Decimal `json:"property_value"`
	MonthlyIncome     decimal.Decimal `json:"monthly_income"`
	DesiredTermMonths int             `json:"desired_term_months"`
	BorrowerProfile   string          `json:"borrower_profile"`
	FundUse           string          `json:"fund_use"`
	LenderCount       int             `json:"lender_count"`
	BestTier          string          `json:"best_tier"`
}

func NewSimulationCompleted(
	inquiryID, tenantID string,
	propertyValue, monthlyIncome decimal.Decimal,
	desiredTermMonths int,
	borrowerProfile, fundUse string,
	lenderCount int, bestTier string,
) SimulationCompleted {
	return SimulationCompleted{
		BaseEvent:         events.NewBaseEvent("financing.simulation.completed", inquiryID, "MortgageInquiry", tenantID),
		PropertyValue:     propertyValue,
		MonthlyIncome:     monthlyIncome,
		DesiredTermMonths: desiredTermMonths,
		BorrowerProfile:   borrowerProfile,
		FundUse:           fundUse,
		LenderCount:       lenderCount,
		BestTier:          bestTier,
	}
}

// SimulationUnmatched is raised when an inquiry found no offers to simulate,
// either because the tenant catalog is empty or nothing passed eligibility.
type SimulationUnmatched struct {
	events.BaseEvent
	BorrowerProfile string `json:"borrower_profile"`
	FundUse         string `json:"fund_use"`
	Reason          string `json:"reason"`
}

func NewSimulationUnmatched(
	inquiryID, tenantID, borrowerProfile, fundUse, reason string,
) SimulationUnmatched {
	return SimulationUnmatched{
		BaseEvent:       events.NewBaseEvent("financing.simulation.unmatched", inquiryID, "MortgageInquiry", tenantID),
		BorrowerProfile: borrowerProfile,
		FundUse:         fundUse,
		Reason:          reason,
	}
}
