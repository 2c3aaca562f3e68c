package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/predialtech/financing-service/internal/domain/model"
)

// OfferCatalogRepo implements port.OfferCatalog against the platform's
// mortgage_offers table. The table is written by the product back office;
// this service only reads it.
type OfferCatalogRepo struct {
	pool *pgxpool.Pool
}

// NewOfferCatalogRepo creates a new repository backed by PostgreSQL.
func NewOfferCatalogRepo(pool *pgxpool.Pool) *OfferCatalogRepo {
	return &OfferCatalogRepo{pool: pool}
}

// ListActive retrieves the tenant's active offers in stable catalog order.
// Ordering matters downstream: the engine's tie-breaks fall back to it.
func (r *OfferCatalogRepo) ListActive(ctx context.Context, tenantID string) ([]model.MortgageOffer, error) {
	query := `
		SELECT id, tenant_id, lender_code, lender_name, product_name,
		       max_loan_to_value_pct, max_debt_to_income_pct, max_loan_amount,
		       max_term_months, annual_effective_rate, total_cost_of_credit,
		       COALESCE(eligible_borrower_profiles, ''),
		       COALESCE(eligible_fund_uses, ''),
		       created_at, updated_at
		FROM mortgage_offers
		WHERE tenant_id = $1 AND active
		ORDER BY created_at, id
	`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query mortgage offers: %w", err)
	}
	defer rows.Close()

	var result []model.MortgageOffer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, offer)
	}
	return result, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanOffer(s scannable) (model.MortgageOffer, error) {
	var (
		offer     model.MortgageOffer
		ltv, dti  decimal.NullDecimal
		maxLoan   decimal.NullDecimal
		rate, tcc decimal.NullDecimal
		maxTerm   sql.NullInt32
	)

	err := s.Scan(
		&offer.ID, &offer.TenantID, &offer.LenderCode,
		&offer.LenderName, &offer.ProductName,
		&ltv, &dti, &maxLoan, &maxTerm, &rate, &tcc,
		&offer.EligibleBorrowerProfiles, &offer.EligibleFundUses,
		&offer.CreatedAt, &offer.UpdatedAt,
	)
	if err != nil {
		return model.MortgageOffer{}, fmt.Errorf("scan mortgage offer: %w", err)
	}

	offer.MaxLoanToValuePct = nullableDecimal(ltv)
	offer.MaxDebtToIncomePct = nullableDecimal(dti)
	offer.MaxLoanAmount = nullableDecimal(maxLoan)
	offer.AnnualEffectiveRate = nullableDecimal(rate)
	offer.TotalCostOfCredit = nullableDecimal(tcc)
	if maxTerm.Valid {
		v := int(maxTerm.Int32)
		offer.MaxTermMonths = &v
	}
	return offer, nil
}

func nullableDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
