package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predialtech/financing-service/internal/application/dto"
	"github.com/predialtech/financing-service/internal/application/usecase"
	"github.com/predialtech/financing-service/internal/domain/event"
	"github.com/predialtech/financing-service/internal/domain/model"
	"github.com/predialtech/financing-service/internal/domain/service"
)

// --- Mock implementations ---

type mockOfferCatalog struct {
	listActiveFunc func(ctx context.Context, tenantID string) ([]model.MortgageOffer, error)
}

func (m *mockOfferCatalog) ListActive(ctx context.Context, tenantID string) ([]model.MortgageOffer, error) {
	if m.listActiveFunc != nil {
		return m.listActiveFunc(ctx, tenantID)
	}
	return nil, fmt.Errorf("catalog unavailable")
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

// --- Helpers ---

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func intPtr(v int) *int { return &v }

func completeOffer(id string, lenderCode int) model.MortgageOffer {
	return model.MortgageOffer{
		ID:                  id,
		TenantID:            "tenant-1",
		LenderCode:          lenderCode,
		LenderName:          "Banco Atlantico",
		ProductName:         "Casa Propia",
		MaxLoanToValuePct:   decPtr(80),
		MaxDebtToIncomePct:  decPtr(30),
		MaxLoanAmount:       decPtr(200_000),
		MaxTermMonths:       intPtr(240),
		AnnualEffectiveRate: decPtr(0.05),
	}
}

func validRequest() dto.SimulateFinancingRequest {
	return dto.SimulateFinancingRequest{
		TenantID:          "tenant-1",
		PropertyValue:     decimal.NewFromInt(100_000),
		MonthlyIncome:     decimal.NewFromInt(2_000),
		DesiredTermMonths: 120,
		BorrowerProfile:   "SALARIED_EMPLOYEE",
		FundUse:           "FIRST_HOME",
	}
}

func newUseCase(catalog *mockOfferCatalog, publisher *mockEventPublisher) *usecase.SimulateFinancingUseCase {
	engine := service.NewSimulationEngine(service.NewCatalogFilter())
	return usecase.NewSimulateFinancingUseCase(catalog, publisher, engine)
}

// --- Tests ---

func TestSimulateFinancingUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("successful simulation publishes a completion event", func(t *testing.T) {
		catalog := &mockOfferCatalog{
			listActiveFunc: func(_ context.Context, tenantID string) ([]model.MortgageOffer, error) {
				assert.Equal(t, "tenant-1", tenantID)
				return []model.MortgageOffer{completeOffer("o1", 1), completeOffer("o2", 2)}, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := newUseCase(catalog, publisher)

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)

		assert.True(t, resp.Ok)
		assert.Empty(t, resp.Reason)
		assert.NotEmpty(t, resp.InquiryID)
		assert.Len(t, resp.Results, 2)

		require.Len(t, publisher.publishedEvents, 1)
		evt, ok := publisher.publishedEvents[0].(event.SimulationCompleted)
		require.True(t, ok)
		assert.Equal(t, "financing.simulation.completed", evt.EventType())
		assert.Equal(t, resp.InquiryID, evt.AggregateID())
		assert.Equal(t, "tenant-1", evt.TenantID())
		assert.Equal(t, 2, evt.LenderCount)
	})

	t.Run("empty catalog returns a structured failure", func(t *testing.T) {
		catalog := &mockOfferCatalog{
			listActiveFunc: func(_ context.Context, _ string) ([]model.MortgageOffer, error) {
				return nil, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := newUseCase(catalog, publisher)

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)

		assert.False(t, resp.Ok)
		assert.Equal(t, dto.ReasonEmptyCatalog, resp.Reason)
		assert.Empty(t, resp.Results)

		require.Len(t, publisher.publishedEvents, 1)
		evt, ok := publisher.publishedEvents[0].(event.SimulationUnmatched)
		require.True(t, ok)
		assert.Equal(t, dto.ReasonEmptyCatalog, evt.Reason)
	})

	t.Run("no eligible offers returns a structured failure", func(t *testing.T) {
		offer := completeOffer("o1", 1)
		offer.EligibleBorrowerProfiles = "self-employed only"
		catalog := &mockOfferCatalog{
			listActiveFunc: func(_ context.Context, _ string) ([]model.MortgageOffer, error) {
				return []model.MortgageOffer{offer}, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := newUseCase(catalog, publisher)

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)

		assert.False(t, resp.Ok)
		assert.Equal(t, dto.ReasonNoMatchingOffers, resp.Reason)
	})

	t.Run("invalid borrower profile fails", func(t *testing.T) {
		uc := newUseCase(&mockOfferCatalog{}, &mockEventPublisher{})

		req := validRequest()
		req.BorrowerProfile = "ASTRONAUT"

		_, err := uc.Execute(ctx, req)
		assert.ErrorContains(t, err, "parse borrower profile")
	})

	t.Run("invalid inquiry amounts fail", func(t *testing.T) {
		uc := newUseCase(&mockOfferCatalog{}, &mockEventPublisher{})

		req := validRequest()
		req.PropertyValue = decimal.Zero

		_, err := uc.Execute(ctx, req)
		assert.ErrorContains(t, err, "create inquiry")
	})

	t.Run("catalog failure is wrapped", func(t *testing.T) {
		catalog := &mockOfferCatalog{
			listActiveFunc: func(_ context.Context, _ string) ([]model.MortgageOffer, error) {
				return nil, fmt.Errorf("connection refused")
			},
		}
		uc := newUseCase(catalog, &mockEventPublisher{})

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorContains(t, err, "list offers")
	})

	t.Run("publish failure is wrapped", func(t *testing.T) {
		catalog := &mockOfferCatalog{
			listActiveFunc: func(_ context.Context, _ string) ([]model.MortgageOffer, error) {
				return []model.MortgageOffer{completeOffer("o1", 1)}, nil
			},
		}
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
				return fmt.Errorf("broker down")
			},
		}
		uc := newUseCase(catalog, publisher)

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorContains(t, err, "publish events")
	})

	t.Run("results come back ranked", func(t *testing.T) {
		affordable := completeOffer("cheap", 1)
		affordable.MaxLoanAmount = decPtr(40_000)
		stretch := completeOffer("stretch", 2)

		catalog := &mockOfferCatalog{
			listActiveFunc: func(_ context.Context, _ string) ([]model.MortgageOffer, error) {
				return []model.MortgageOffer{stretch, affordable}, nil
			},
		}
		uc := newUseCase(catalog, &mockEventPublisher{})

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)
		require.Len(t, resp.Results, 2)
		assert.Equal(t, "VIABLE", resp.Results[0].Tier)
		assert.Equal(t, "EXTENDABLE", resp.Results[1].Tier)
		assert.Nil(t, resp.Results[0].RecommendedTermMonths)
		assert.NotNil(t, resp.Results[1].RecommendedTermMonths)
	})
}
