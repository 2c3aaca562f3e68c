package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// Annuity math for fixed-payment mortgage simulations.
//
// Rates are handled as float64 for the power and logarithm steps, then
// converted back to decimal for monetary arithmetic, matching how the rest of
// the platform treats interest calculations.

// MonthlyRate converts an annual effective rate (as a fraction, e.g. 0.045
// for 4.5%) into the equivalent compounded monthly rate.
//
//	r = (1 + annual)^(1/12) - 1
func MonthlyRate(annualEffectiveRate float64) float64 {
	return math.Pow(1+annualEffectiveRate, 1.0/12.0) - 1
}

// Installment computes the fixed monthly payment for a principal financed
// over termMonths at the given monthly rate.
//
//	M = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate degenerates to an even split of the principal.
func Installment(principal decimal.Decimal, monthlyRate float64, termMonths int) decimal.Decimal {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	if monthlyRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	}

	factor := math.Pow(1+monthlyRate, float64(termMonths))
	paymentFloat := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(paymentFloat).Round(2)
}

// MinimumTermForInstallmentCap solves the annuity formula for the smallest
// whole number of months at which the fixed payment does not exceed
// maxInstallment.
//
//	n = ln(M / (M - P*r)) / ln(1 + r)
//
// The second return value is false when no finite term can satisfy the cap:
// the cap does not even cover the first month's interest (M <= P*r), so
// extending the term never helps.
func MinimumTermForInstallmentCap(
	principal decimal.Decimal,
	monthlyRate float64,
	maxInstallment decimal.Decimal,
) (int, bool) {
	if principal.LessThanOrEqual(decimal.Zero) || maxInstallment.LessThanOrEqual(decimal.Zero) {
		return 0, false
	}

	if monthlyRate == 0 {
		months := principal.Div(maxInstallment).Ceil().IntPart()
		return int(months), true
	}

	m := maxInstallment.InexactFloat64()
	interestOnly := principal.InexactFloat64() * monthlyRate
	if m-interestOnly <= 0 {
		return 0, false
	}

	ratio := m / (m - interestOnly)
	if ratio <= 1 {
		return 0, false
	}
	months := math.Ceil(math.Log(ratio) / math.Log(1+monthlyRate))
	return int(months), true
}
