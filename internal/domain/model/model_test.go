package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predialtech/financing-service/internal/domain/valueobject"
)

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func intPtr(v int) *int { return &v }

func fullOffer() MortgageOffer {
	return MortgageOffer{
		ID:                  "offer-1",
		TenantID:            "tenant-1",
		LenderCode:          7,
		LenderName:          "Banco Atlantico",
		ProductName:         "Casa Propia",
		MaxLoanToValuePct:   decPtr(80),
		MaxDebtToIncomePct:  decPtr(30),
		MaxLoanAmount:       decPtr(150_000),
		MaxTermMonths:       intPtr(300),
		AnnualEffectiveRate: decPtr(0.045),
	}
}

func TestMortgageOffer_IsSimulatable(t *testing.T) {
	assert.True(t, fullOffer().IsSimulatable())

	t.Run("each missing required field disqualifies", func(t *testing.T) {
		mutations := map[string]func(*MortgageOffer){
			"no rate":     func(o *MortgageOffer) { o.AnnualEffectiveRate = nil },
			"no ltv":      func(o *MortgageOffer) { o.MaxLoanToValuePct = nil },
			"no dti":      func(o *MortgageOffer) { o.MaxDebtToIncomePct = nil },
			"no max loan": func(o *MortgageOffer) { o.MaxLoanAmount = nil },
			"no max term": func(o *MortgageOffer) { o.MaxTermMonths = nil },
		}
		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				offer := fullOffer()
				mutate(&offer)
				assert.False(t, offer.IsSimulatable())
			})
		}
	})

	t.Run("total cost of credit is optional", func(t *testing.T) {
		offer := fullOffer()
		offer.TotalCostOfCredit = nil
		assert.True(t, offer.IsSimulatable())
	})
}

func TestNewMortgageInquiry(t *testing.T) {
	valid := func() (MortgageInquiry, error) {
		return NewMortgageInquiry(
			"tenant-1",
			decimal.NewFromInt(100_000),
			decimal.NewFromInt(2_000),
			120,
			valueobject.BorrowerProfileSalaried,
			valueobject.FundUseFirstHome,
		)
	}

	t.Run("valid inquiry gets an ID", func(t *testing.T) {
		inquiry, err := valid()
		require.NoError(t, err)
		assert.NotEmpty(t, inquiry.ID())
		assert.Equal(t, "tenant-1", inquiry.TenantID())
		assert.Equal(t, 120, inquiry.DesiredTermMonths())
	})

	t.Run("missing tenant", func(t *testing.T) {
		_, err := NewMortgageInquiry(
			"", decimal.NewFromInt(100_000), decimal.NewFromInt(2_000), 120,
			valueobject.BorrowerProfileSalaried, valueobject.FundUseFirstHome,
		)
		assert.ErrorContains(t, err, "tenant")
	})

	t.Run("non-positive amounts and term", func(t *testing.T) {
		_, err := NewMortgageInquiry(
			"tenant-1", decimal.Zero, decimal.NewFromInt(2_000), 120,
			valueobject.BorrowerProfileSalaried, valueobject.FundUseFirstHome,
		)
		assert.ErrorContains(t, err, "property value")

		_, err = NewMortgageInquiry(
			"tenant-1", decimal.NewFromInt(100_000), decimal.NewFromInt(-1), 120,
			valueobject.BorrowerProfileSalaried, valueobject.FundUseFirstHome,
		)
		assert.ErrorContains(t, err, "monthly income")

		_, err = NewMortgageInquiry(
			"tenant-1", decimal.NewFromInt(100_000), decimal.NewFromInt(2_000), 0,
			valueobject.BorrowerProfileSalaried, valueobject.FundUseFirstHome,
		)
		assert.ErrorContains(t, err, "term")
	})
}

func TestSimulationResultConstructors(t *testing.T) {
	offer := fullOffer()
	figures := SimulationFigures{
		FinancedAmount:           decimal.NewFromInt(80_000),
		RequiredDownPayment:      decimal.NewFromInt(20_000),
		InstallmentAtDesiredTerm: decimal.NewFromFloat(612.34),
		MaxAllowedInstallment:    decimal.NewFromInt(600),
		DesiredTermMonths:        120,
		MonthlyRatePct:           decimal.NewFromFloat(0.3675),
		AnnualRatePct:            decimal.NewFromFloat(4.5),
	}

	t.Run("viable carries no recommended term", func(t *testing.T) {
		r := NewViableResult(offer, figures)
		assert.True(t, r.Tier.Equal(valueobject.ViabilityTierViable))
		assert.Nil(t, r.RecommendedTermMonths)
		assert.Equal(t, 7, r.LenderCode)
		assert.Equal(t, 300, r.MaxTermMonths)
	})

	t.Run("extendable carries the minimum affordable term", func(t *testing.T) {
		r := NewExtendableResult(offer, figures, 180)
		assert.True(t, r.Tier.Equal(valueobject.ViabilityTierExtendable))
		require.NotNil(t, r.RecommendedTermMonths)
		assert.Equal(t, 180, *r.RecommendedTermMonths)
	})

	t.Run("not viable falls back to the lender max term", func(t *testing.T) {
		r := NewNotViableResult(offer, figures)
		assert.True(t, r.Tier.Equal(valueobject.ViabilityTierNotViable))
		require.NotNil(t, r.RecommendedTermMonths)
		assert.Equal(t, 300, *r.RecommendedTermMonths)
	})

	t.Run("total cost of credit is surfaced as a percentage", func(t *testing.T) {
		withTCC := fullOffer()
		withTCC.TotalCostOfCredit = decPtr(0.061)

		r := NewViableResult(withTCC, figures)
		require.NotNil(t, r.TotalCostOfCreditPct)
		assert.True(t, r.TotalCostOfCreditPct.Equal(decimal.NewFromFloat(6.1)))

		r = NewViableResult(fullOffer(), figures)
		assert.Nil(t, r.TotalCostOfCreditPct)
	})
}
