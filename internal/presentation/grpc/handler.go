package grpc

import (
	"context"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/predialtech/financing-service/internal/application/dto"
	"github.com/predialtech/financing-service/internal/application/usecase"
)

// FinancingHandler is the gRPC handler for financing operations.
type FinancingHandler struct {
	UnimplementedFinancingServiceServer
	simulate   *usecase.SimulateFinancingUseCase
	listOffers *usecase.ListOffersUseCase
}

// NewFinancingHandler creates a new handler with all use-case dependencies.
func NewFinancingHandler(
	simulate *usecase.SimulateFinancingUseCase,
	listOffers *usecase.ListOffersUseCase,
) *FinancingHandler {
	return &FinancingHandler{
		simulate:   simulate,
		listOffers: listOffers,
	}
}

// SimulateFinancing runs the viability simulation for one inquiry.
func (h *FinancingHandler) SimulateFinancing(
	ctx context.Context,
	req *SimulateFinancingRequest,
) (*SimulateFinancingResponse, error) {
	propertyValue, err := decimal.NewFromString(req.PropertyValue)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid property value: %v", err)
	}
	monthlyIncome, err := decimal.NewFromString(req.MonthlyIncome)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid monthly income: %v", err)
	}

	resp, err := h.simulate.Execute(ctx, dto.SimulateFinancingRequest{
		TenantID:          req.TenantID,
		PropertyValue:     propertyValue,
		MonthlyIncome:     monthlyIncome,
		DesiredTermMonths: req.DesiredTermMonths,
		BorrowerProfile:   req.BorrowerProfile,
		FundUse:           req.FundUse,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}

	out := &SimulateFinancingResponse{
		InquiryID: resp.InquiryID,
		Ok:        resp.Ok,
		Reason:    resp.Reason,
	}
	for _, r := range resp.Results {
		out.Results = append(out.Results, toProtoResult(r))
	}
	return out, nil
}

// ListOffers returns the tenant's catalog.
func (h *FinancingHandler) ListOffers(
	ctx context.Context,
	req *ListOffersRequest,
) (*ListOffersResponse, error) {
	resp, err := h.listOffers.Execute(ctx, dto.ListOffersRequest{TenantID: req.TenantID})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}

	out := &ListOffersResponse{Offers: make([]*Offer, 0, len(resp.Offers))}
	for _, o := range resp.Offers {
		out.Offers = append(out.Offers, &Offer{
			ID:                       o.ID,
			LenderCode:               o.LenderCode,
			LenderName:               o.LenderName,
			ProductName:              o.ProductName,
			MaxLoanToValuePct:        decimalString(o.MaxLoanToValuePct),
			MaxDebtToIncomePct:       decimalString(o.MaxDebtToIncomePct),
			MaxLoanAmount:            decimalString(o.MaxLoanAmount),
			MaxTermMonths:            intValue(o.MaxTermMonths),
			AnnualEffectiveRate:      decimalString(o.AnnualEffectiveRate),
			TotalCostOfCredit:        decimalString(o.TotalCostOfCredit),
			EligibleBorrowerProfiles: o.EligibleBorrowerProfiles,
			EligibleFundUses:         o.EligibleFundUses,
			Simulatable:              o.Simulatable,
		})
	}
	return out, nil
}

func toProtoResult(r dto.SimulationResultResponse) *SimulationResult {
	return &SimulationResult{
		LenderCode:               r.LenderCode,
		LenderName:               r.LenderName,
		ProductName:              r.ProductName,
		Tier:                     r.Tier,
		FinancedAmount:           r.FinancedAmount.String(),
		RequiredDownPayment:      r.RequiredDownPayment.String(),
		InstallmentAtDesiredTerm: r.InstallmentAtDesiredTerm.String(),
		MaxAllowedInstallment:    r.MaxAllowedInstallment.String(),
		DesiredTermMonths:        r.DesiredTermMonths,
		RecommendedTermMonths:    intValue(r.RecommendedTermMonths),
		MaxTermMonths:            r.MaxTermMonths,
		MonthlyRatePct:           r.MonthlyRatePct.String(),
		AnnualRatePct:            r.AnnualRatePct.String(),
		TotalCostOfCreditPct:     decimalString(r.TotalCostOfCreditPct),
	}
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
