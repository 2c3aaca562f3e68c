package grpc

// proto.go defines the gRPC server interface derived from
// predial/financing/v1/financing.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/predialtech/api/gen/go/predial/financing/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// SimulateFinancingRequest mirrors predial.financing.v1.SimulateFinancingRequest.
// Monetary fields travel as decimal strings.
type SimulateFinancingRequest struct {
	TenantID          string `json:"tenant_id"`
	PropertyValue     string `json:"property_value"`
	MonthlyIncome     string `json:"monthly_income"`
	DesiredTermMonths int    `json:"desired_term_months"`
	BorrowerProfile   string `json:"borrower_profile"`
	FundUse           string `json:"fund_use"`
}

// SimulationResult mirrors predial.financing.v1.SimulationResult.
type SimulationResult struct {
	LenderCode               int    `json:"lender_code"`
	LenderName               string `json:"lender_name"`
	ProductName              string `json:"product_name"`
	Tier                     string `json:"tier"`
	FinancedAmount           string `json:"financed_amount"`
	RequiredDownPayment      string `json:"required_down_payment"`
	InstallmentAtDesiredTerm string `json:"installment_at_desired_term"`
	MaxAllowedInstallment    string `json:"max_allowed_installment"`
	DesiredTermMonths        int    `json:"desired_term_months"`
	RecommendedTermMonths    int    `json:"recommended_term_months,omitempty"`
	MaxTermMonths            int    `json:"max_term_months"`
	MonthlyRatePct           string `json:"monthly_rate_pct"`
	AnnualRatePct            string `json:"annual_rate_pct"`
	TotalCostOfCreditPct     string `json:"total_cost_of_credit_pct,omitempty"`
}

// SimulateFinancingResponse mirrors predial.financing.v1.SimulateFinancingResponse.
type SimulateFinancingResponse struct {
	InquiryID string              `json:"inquiry_id"`
	Ok        bool                `json:"ok"`
	Reason    string              `json:"reason,omitempty"`
	Results   []*SimulationResult `json:"results,omitempty"`
}

// ListOffersRequest mirrors predial.financing.v1.ListOffersRequest.
type ListOffersRequest struct {
	TenantID string `json:"tenant_id"`
}

// Offer mirrors predial.financing.v1.Offer.
type Offer struct {
	ID                       string `json:"id"`
	LenderCode               int    `json:"lender_code"`
	LenderName               string `json:"lender_name"`
	ProductName              string `json:"product_name"`
	MaxLoanToValuePct        string `json:"max_loan_to_value_pct,omitempty"`
	MaxDebtToIncomePct       string `json:"max_debt_to_income_pct,omitempty"`
	MaxLoanAmount            string `json:"max_loan_amount,omitempty"`
	MaxTermMonths            int    `json:"max_term_months,omitempty"`
	AnnualEffectiveRate      string `json:"annual_effective_rate,omitempty"`
	TotalCostOfCredit        string `json:"total_cost_of_credit,omitempty"`
	EligibleBorrowerProfiles string `json:"eligible_borrower_profiles"`
	EligibleFundUses         string `json:"eligible_fund_uses"`
	Simulatable              bool   `json:"simulatable"`
}

// ListOffersResponse mirrors predial.financing.v1.ListOffersResponse.
type ListOffersResponse struct {
	Offers []*Offer `json:"offers"`
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// FinancingServiceServer is the server API for FinancingService.
// It mirrors the proto-generated interface from predial.financing.v1.FinancingService.
type FinancingServiceServer interface {
	SimulateFinancing(context.Context, *SimulateFinancingRequest) (*SimulateFinancingResponse, error)
	ListOffers(context.Context, *ListOffersRequest) (*ListOffersResponse, error)
	mustEmbedUnimplementedFinancingServiceServer()
}

// UnimplementedFinancingServiceServer provides forward-compatible default implementations.
type UnimplementedFinancingServiceServer struct{}

func (UnimplementedFinancingServiceServer) SimulateFinancing(context.Context, *SimulateFinancingRequest) (*SimulateFinancingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulateFinancing not implemented")
}
func (UnimplementedFinancingServiceServer) ListOffers(context.Context, *ListOffersRequest) (*ListOffersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListOffers not implemented")
}
func (UnimplementedFinancingServiceServer) mustEmbedUnimplementedFinancingServiceServer() {}

// RegisterFinancingServiceServer registers the FinancingServiceServer with the gRPC server.
func RegisterFinancingServiceServer(s *grpclib.Server, srv FinancingServiceServer) {
	s.RegisterService(&_FinancingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _FinancingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "predial.financing.v1.FinancingService",
	HandlerType: (*FinancingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "SimulateFinancing", Handler: _FinancingService_SimulateFinancing_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "ListOffers", Handler: _FinancingService_ListOffers_Handler},               //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_SimulateFinancing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulateFinancingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).SimulateFinancing(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/predial.financing.v1.FinancingService/SimulateFinancing",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinancingServiceServer).SimulateFinancing(ctx, req.(*SimulateFinancingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_ListOffers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListOffersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).ListOffers(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/predial.financing.v1.FinancingService/ListOffers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinancingServiceServer).ListOffers(ctx, req.(*ListOffersRequest))
	}
	return interceptor(ctx, in, info, handler)
}
