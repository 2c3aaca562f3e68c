package model

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/predialtech/financing-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// MortgageInquiry value object
// ---------------------------------------------------------------------------

// MortgageInquiry captures one borrower submission of the financing form.
// It is constructed fresh per simulation call and never persisted by this
// service.
type MortgageInquiry struct {
	id                string
	tenantID          string
	propertyValue     decimal.Decimal
	monthlyIncome     decimal.Decimal
	desiredTermMonths int
	borrowerProfile   valueobject.BorrowerProfile
	fundUse           valueobject.FundUse
}

// NewMortgageInquiry validates and creates a new inquiry.
func NewMortgageInquiry(
	tenantID string,
	propertyValue, monthlyIncome decimal.Decimal,
	desiredTermMonths int,
	borrowerProfile valueobject.BorrowerProfile,
	fundUse valueobject.FundUse,
) (MortgageInquiry, error) {
	if tenantID == "" {
		return MortgageInquiry{}, errors.New("tenant ID is required")
	}
	if propertyValue.LessThanOrEqual(decimal.Zero) {
		return MortgageInquiry{}, errors.New("property value must be positive")
	}
	if monthlyIncome.LessThanOrEqual(decimal.Zero) {
		return MortgageInquiry{}, errors.New("monthly income must be positive")
	}
	if desiredTermMonths <= 0 {
		return MortgageInquiry{}, errors.New("desired term months must be positive")
	}

	return MortgageInquiry{
		id:                uuid.New().String(),
		tenantID:          tenantID,
		propertyValue:     propertyValue,
		monthlyIncome:     monthlyIncome,
		desiredTermMonths: desiredTermMonths,
		borrowerProfile:   borrowerProfile,
		fundUse:           fundUse,
	}, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (i MortgageInquiry) ID() string                                   { return i.id }
func (i MortgageInquiry) TenantID() string                             { return i.tenantID }
func (i MortgageInquiry) PropertyValue() decimal.Decimal               { return i.propertyValue }
func (i MortgageInquiry) MonthlyIncome() decimal.Decimal               { return i.monthlyIncome }
func (i MortgageInquiry) DesiredTermMonths() int                       { return i.desiredTermMonths }
func (i MortgageInquiry) BorrowerProfile() valueobject.BorrowerProfile { return i.borrowerProfile }
func (i MortgageInquiry) FundUse() valueobject.FundUse                 { return i.fundUse }
