package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predialtech/financing-service/pkg/testutil"
)

// Integration test, needs Docker. Run with INTEGRATION_TESTS=true.
func TestOfferCatalogRepo_ListActive(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") != "true" {
		t.Skip("set INTEGRATION_TESTS=true to run")
	}

	ctx := context.Background()
	container := testutil.NewPostgresContainer(ctx, t)
	defer container.Cleanup(t)

	schema, err := os.ReadFile("../../../migrations/0001_create_mortgage_offers.up.sql")
	require.NoError(t, err)
	_, err = container.Pool.Exec(ctx, string(schema))
	require.NoError(t, err)

	repo := NewOfferCatalogRepo(container.Pool)
	tenantID := testutil.TestTenantID.String()
	otherTenant := uuid.New().String()

	insert := `
		INSERT INTO mortgage_offers (
			id, tenant_id, lender_code, lender_name, product_name,
			max_loan_to_value_pct, max_debt_to_income_pct, max_loan_amount,
			max_term_months, annual_effective_rate, total_cost_of_credit,
			eligible_borrower_profiles, eligible_fund_uses, active, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$15)
	`
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	// Complete offer.
	_, err = container.Pool.Exec(ctx, insert,
		testutil.TestOfferID.String(), tenantID, 1, "Banco Atlantico", "Casa Propia",
		80.0, 30.0, 150000.0, 300, 0.045, 0.061,
		"salaried employees", "first home", true, base,
	)
	require.NoError(t, err)

	// Partially entered offer: nullable numerics absent, text columns NULL.
	_, err = container.Pool.Exec(ctx, insert,
		uuid.New().String(), tenantID, 2, "Banco del Sur", "Hipoteca Flex",
		nil, nil, nil, nil, nil, nil,
		nil, nil, true, base.Add(time.Hour),
	)
	require.NoError(t, err)

	// Inactive offer, must not be listed.
	_, err = container.Pool.Exec(ctx, insert,
		uuid.New().String(), tenantID, 3, "Banco Norte", "Retirada",
		80.0, 30.0, 150000.0, 300, 0.045, nil,
		"", "", false, base.Add(2*time.Hour),
	)
	require.NoError(t, err)

	// Another tenant's offer, must not leak.
	_, err = container.Pool.Exec(ctx, insert,
		uuid.New().String(), otherTenant, 4, "Banco Ajeno", "Otra",
		80.0, 30.0, 150000.0, 300, 0.045, nil,
		"", "", true, base,
	)
	require.NoError(t, err)

	offers, err := repo.ListActive(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, offers, 2)

	// Catalog order: oldest first.
	complete, partial := offers[0], offers[1]
	assert.Equal(t, testutil.TestOfferID.String(), complete.ID)
	assert.Equal(t, 1, complete.LenderCode)
	assert.True(t, complete.IsSimulatable())
	require.NotNil(t, complete.MaxLoanToValuePct)
	assert.True(t, complete.MaxLoanToValuePct.Equal(decimal.NewFromInt(80)))
	require.NotNil(t, complete.MaxTermMonths)
	assert.Equal(t, 300, *complete.MaxTermMonths)
	require.NotNil(t, complete.TotalCostOfCredit)
	assert.Equal(t, "salaried employees", complete.EligibleBorrowerProfiles)

	assert.Equal(t, 2, partial.LenderCode)
	assert.False(t, partial.IsSimulatable())
	assert.Nil(t, partial.MaxLoanAmount)
	assert.Nil(t, partial.MaxTermMonths)
	assert.Empty(t, partial.EligibleBorrowerProfiles, "NULL text columns coalesce to empty")

	t.Run("unknown tenant gets an empty catalog", func(t *testing.T) {
		offers, err := repo.ListActive(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Empty(t, offers)
	})
}
