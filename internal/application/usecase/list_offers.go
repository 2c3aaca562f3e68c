package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/predialtech/financing-service/internal/application/dto"
	"github.com/predialtech/financing-service/internal/domain/model"
	"github.com/predialtech/financing-service/internal/domain/port"
)

// ListOffersUseCase returns the tenant's mortgage product catalog.
type ListOffersUseCase struct {
	catalog port.OfferCatalog
}

func NewListOffersUseCase(catalog port.OfferCatalog) *ListOffersUseCase {
	return &ListOffersUseCase{catalog: catalog}
}

// Execute lists the active offers for a tenant, including rows that are not
// yet simulatable so back-office users can spot incomplete entries.
func (uc *ListOffersUseCase) Execute(
	ctx context.Context,
	req dto.ListOffersRequest,
) (dto.ListOffersResponse, error) {
	if req.TenantID == "" {
		return dto.ListOffersResponse{}, errors.New("tenant ID is required")
	}

	offers, err := uc.catalog.ListActive(ctx, req.TenantID)
	if err != nil {
		return dto.ListOffersResponse{}, fmt.Errorf("list offers: %w", err)
	}

	out := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, toOfferResponse(o))
	}
	return dto.ListOffersResponse{Offers: out}, nil
}

func toOfferResponse(o model.MortgageOffer) dto.OfferResponse {
	return dto.OfferResponse{
		ID:                       o.ID,
		LenderCode:               o.LenderCode,
		LenderName:               o.LenderName,
		ProductName:              o.ProductName,
		MaxLoanToValuePct:        o.MaxLoanToValuePct,
		MaxDebtToIncomePct:       o.MaxDebtToIncomePct,
		MaxLoanAmount:            o.MaxLoanAmount,
		MaxTermMonths:            o.MaxTermMonths,
		AnnualEffectiveRate:      o.AnnualEffectiveRate,
		TotalCostOfCredit:        o.TotalCostOfCredit,
		EligibleBorrowerProfiles: o.EligibleBorrowerProfiles,
		EligibleFundUses:         o.EligibleFundUses,
		Simulatable:              o.IsSimulatable(),
		CreatedAt:                o.CreatedAt,
		UpdatedAt:                o.UpdatedAt,
	}
}
