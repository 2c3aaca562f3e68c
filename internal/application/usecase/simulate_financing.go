package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/predialtech/financing-service/internal/application/dto"
	"github.com/predialtech/financing-service/internal/domain/event"
	"github.com/predialtech/financing-service/internal/domain/model"
	"github.com/predialtech/financing-service/internal/domain/port"
	"github.com/predialtech/financing-service/internal/domain/service"
	"github.com/predialtech/financing-service/internal/domain/valueobject"
)

// SimulateFinancingUseCase orchestrates one financing simulation: catalog
// fetch, engine run, and event publication.
type SimulateFinancingUseCase struct {
	catalog   port.OfferCatalog
	publisher port.EventPublisher
	engine    *service.SimulationEngine
}

// NewSimulateFinancingUseCase wires dependencies.
func NewSimulateFinancingUseCase(
	catalog port.OfferCatalog,
	publisher port.EventPublisher,
	engine *service.SimulationEngine,
) *SimulateFinancingUseCase {
	return &SimulateFinancingUseCase{
		catalog:   catalog,
		publisher: publisher,
		engine:    engine,
	}
}

// Execute runs the viability pipeline for one inquiry. The two no-result
// conditions come back as a structured Ok=false response rather than an
// error; callers render them directly to the borrower.
func (uc *SimulateFinancingUseCase) Execute(
	ctx context.Context,
	req dto.SimulateFinancingRequest,
) (dto.SimulationResponse, error) {
	// 1. Validate enum inputs.
	profile, err := valueobject.NewBorrowerProfile(req.BorrowerProfile)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("parse borrower profile: %w", err)
	}
	fundUse, err := valueobject.NewFundUse(req.FundUse)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("parse fund use: %w", err)
	}

	// 2. Create the inquiry.
	inquiry, err := model.NewMortgageInquiry(
		req.TenantID, req.PropertyValue, req.MonthlyIncome,
		req.DesiredTermMonths, profile, fundUse,
	)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("create inquiry: %w", err)
	}

	// 3. Fetch the tenant catalog.
	offers, err := uc.catalog.ListActive(ctx, req.TenantID)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("list offers: %w", err)
	}

	// 4. Run the engine.
	results, err := uc.engine.Simulate(inquiry, offers)
	switch {
	case errors.Is(err, service.ErrEmptyCatalog):
		return uc.unmatched(ctx, inquiry, dto.ReasonEmptyCatalog)
	case errors.Is(err, service.ErrNoMatchingOffers):
		return uc.unmatched(ctx, inquiry, dto.ReasonNoMatchingOffers)
	case err != nil:
		return dto.SimulationResponse{}, fmt.Errorf("simulate: %w", err)
	}

	// 5. Publish the completion event.
	completed := event.NewSimulationCompleted(
		inquiry.ID(), inquiry.TenantID(),
		inquiry.PropertyValue(), inquiry.MonthlyIncome(),
		inquiry.DesiredTermMonths(),
		inquiry.BorrowerProfile().String(), inquiry.FundUse().String(),
		len(results), results[0].Tier.String(),
	)
	if err := uc.publisher.Publish(ctx, completed); err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.SimulationResponse{
		InquiryID: inquiry.ID(),
		Ok:        true,
		Results:   toResultResponses(results),
	}, nil
}

func (uc *SimulateFinancingUseCase) unmatched(
	ctx context.Context,
	inquiry model.MortgageInquiry,
	reason string,
) (dto.SimulationResponse, error) {
	ev := event.NewSimulationUnmatched(
		inquiry.ID(), inquiry.TenantID(),
		inquiry.BorrowerProfile().String(), inquiry.FundUse().String(),
		reason,
	)
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.SimulationResponse{
		InquiryID: inquiry.ID(),
		Ok:        false,
		Reason:    reason,
	}, nil
}

func toResultResponses(results []model.SimulationResult) []dto.SimulationResultResponse {
	out := make([]dto.SimulationResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.SimulationResultResponse{
			LenderCode:               r.LenderCode,
			LenderName:               r.LenderName,
			ProductName:              r.ProductName,
			Tier:                     r.Tier.String(),
			FinancedAmount:           r.FinancedAmount,
			RequiredDownPayment:      r.RequiredDownPayment,
			InstallmentAtDesiredTerm: r.InstallmentAtDesiredTerm,
			MaxAllowedInstallment:    r.MaxAllowedInstallment,
			DesiredTermMonths:        r.DesiredTermMonths,
			RecommendedTermMonths:    r.RecommendedTermMonths,
			MaxTermMonths:            r.MaxTermMonths,
			MonthlyRatePct:           r.MonthlyRatePct,
			AnnualRatePct:            r.AnnualRatePct,
			TotalCostOfCreditPct:     r.TotalCostOfCreditPct,
		})
	}
	return out
}
