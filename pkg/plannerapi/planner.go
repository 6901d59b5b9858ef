package plannerapi

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// PlannerServiceName is the fully-qualified name of the PlannerService.
const PlannerServiceName = "tableplanner.v1.PlannerService"

const (
	PlannerServicePreviewAssignmentProcedure = "/tableplanner.v1.PlannerService/PreviewAssignment"
	PlannerServiceCreateFloorPlanProcedure   = "/tableplanner.v1.PlannerService/CreateFloorPlan"
	PlannerServiceGetFloorPlanProcedure      = "/tableplanner.v1.PlannerService/GetFloorPlan"
	PlannerServiceListFloorPlansProcedure    = "/tableplanner.v1.PlannerService/ListFloorPlans"
	PlannerServiceRenameFloorPlanProcedure   = "/tableplanner.v1.PlannerService/RenameFloorPlan"
	PlannerServiceDeleteFloorPlanProcedure   = "/tableplanner.v1.PlannerService/DeleteFloorPlan"
	PlannerServiceSaveFloorPlanProcedure     = "/tableplanner.v1.PlannerService/SaveFloorPlan"
	PlannerServiceAutoAssignProcedure        = "/tableplanner.v1.PlannerService/AutoAssign"
)

// PlannerServiceHandler is implemented by the server side of the PlannerService.
type PlannerServiceHandler interface {
	PreviewAssignment(context.Context, *connect.Request[PreviewAssignmentRequest]) (*connect.Response[PreviewAssignmentResponse], error)
	CreateFloorPlan(context.Context, *connect.Request[CreateFloorPlanRequest]) (*connect.Response[CreateFloorPlanResponse], error)
	GetFloorPlan(context.Context, *connect.Request[GetFloorPlanRequest]) (*connect.Response[GetFloorPlanResponse], error)
	ListFloorPlans(context.Context, *connect.Request[ListFloorPlansRequest]) (*connect.Response[ListFloorPlansResponse], error)
	RenameFloorPlan(context.Context, *connect.Request[RenameFloorPlanRequest]) (*connect.Response[RenameFloorPlanResponse], error)
	DeleteFloorPlan(context.Context, *connect.Request[DeleteFloorPlanRequest]) (*connect.Response[DeleteFloorPlanResponse], error)
	SaveFloorPlan(context.Context, *connect.Request[SaveFloorPlanRequest]) (*connect.Response[SaveFloorPlanResponse], error)
	AutoAssign(context.Context, *connect.Request[AutoAssignRequest]) (*connect.Response[AutoAssignResponse], error)
}

// NewPlannerServiceHandler builds an HTTP handler for svc. It returns the
// path prefix to mount it on.
func NewPlannerServiceHandler(svc PlannerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(PlannerServicePreviewAssignmentProcedure, connect.NewUnaryHandler(PlannerServicePreviewAssignmentProcedure, svc.PreviewAssignment, opts...))
	mux.Handle(PlannerServiceCreateFloorPlanProcedure, connect.NewUnaryHandler(PlannerServiceCreateFloorPlanProcedure, svc.CreateFloorPlan, opts...))
	mux.Handle(PlannerServiceGetFloorPlanProcedure, connect.NewUnaryHandler(PlannerServiceGetFloorPlanProcedure, svc.GetFloorPlan, opts...))
	mux.Handle(PlannerServiceListFloorPlansProcedure, connect.NewUnaryHandler(PlannerServiceListFloorPlansProcedure, svc.ListFloorPlans, opts...))
	mux.Handle(PlannerServiceRenameFloorPlanProcedure, connect.NewUnaryHandler(PlannerServiceRenameFloorPlanProcedure, svc.RenameFloorPlan, opts...))
	mux.Handle(PlannerServiceDeleteFloorPlanProcedure, connect.NewUnaryHandler(PlannerServiceDeleteFloorPlanProcedure, svc.DeleteFloorPlan, opts...))
	mux.Handle(PlannerServiceSaveFloorPlanProcedure, connect.NewUnaryHandler(PlannerServiceSaveFloorPlanProcedure, svc.SaveFloorPlan, opts...))
	mux.Handle(PlannerServiceAutoAssignProcedure, connect.NewUnaryHandler(PlannerServiceAutoAssignProcedure, svc.AutoAssign, opts...))
	return "/" + PlannerServiceName + "/", mux
}

// PlannerServiceClient calls a remote PlannerService.
type PlannerServiceClient struct {
	previewAssignment *connect.Client[PreviewAssignmentRequest, PreviewAssignmentResponse]
	createFloorPlan   *connect.Client[CreateFloorPlanRequest, CreateFloorPlanResponse]
	getFloorPlan      *connect.Client[GetFloorPlanRequest, GetFloorPlanResponse]
	listFloorPlans    *connect.Client[ListFloorPlansRequest, ListFloorPlansResponse]
	renameFloorPlan   *connect.Client[RenameFloorPlanRequest, RenameFloorPlanResponse]
	deleteFloorPlan   *connect.Client[DeleteFloorPlanRequest, DeleteFloorPlanResponse]
	saveFloorPlan     *connect.Client[SaveFloorPlanRequest, SaveFloorPlanResponse]
	autoAssign        *connect.Client[AutoAssignRequest, AutoAssignResponse]
}

// NewPlannerServiceClient returns a client for the PlannerService at baseURL.
func NewPlannerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *PlannerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &PlannerServiceClient{
		previewAssignment: connect.NewClient[PreviewAssignmentRequest, PreviewAssignmentResponse](httpClient, baseURL+PlannerServicePreviewAssignmentProcedure, opts...),
		createFloorPlan:   connect.NewClient[CreateFloorPlanRequest, CreateFloorPlanResponse](httpClient, baseURL+PlannerServiceCreateFloorPlanProcedure, opts...),
		getFloorPlan:      connect.NewClient[GetFloorPlanRequest, GetFloorPlanResponse](httpClient, baseURL+PlannerServiceGetFloorPlanProcedure, opts...),
		listFloorPlans:    connect.NewClient[ListFloorPlansRequest, ListFloorPlansResponse](httpClient, baseURL+PlannerServiceListFloorPlansProcedure, opts...),
		renameFloorPlan:   connect.NewClient[RenameFloorPlanRequest, RenameFloorPlanResponse](httpClient, baseURL+PlannerServiceRenameFloorPlanProcedure, opts...),
		deleteFloorPlan:   connect.NewClient[DeleteFloorPlanRequest, DeleteFloorPlanResponse](httpClient, baseURL+PlannerServiceDeleteFloorPlanProcedure, opts...),
		saveFloorPlan:     connect.NewClient[SaveFloorPlanRequest, SaveFloorPlanResponse](httpClient, baseURL+PlannerServiceSaveFloorPlanProcedure, opts...),
		autoAssign:        connect.NewClient[AutoAssignRequest, AutoAssignResponse](httpClient, baseURL+PlannerServiceAutoAssignProcedure, opts...),
	}
}

func (c *PlannerServiceClient) PreviewAssignment(ctx context.Context, req *connect.Request[PreviewAssignmentRequest]) (*connect.Response[PreviewAssignmentResponse], error) {
	return c.previewAssignment.CallUnary(ctx, req)
}

func (c *PlannerServiceClient) CreateFloorPlan(ctx context.Context, req *connect.Request[CreateFloorPlanRequest]) (*connect.Response[CreateFloorPlanResponse], error) {
	return c.createFloorPlan.CallUnary(ctx, req)
}

func (c *PlannerServiceClient) GetFloorPlan(ctx context.Context, req *connect.Request[GetFloorPlanRequest]) (*connect.Response[GetFloorPlanResponse], error) {
	return c.getFloorPlan.CallUnary(ctx, req)
}

func (c *PlannerServiceClient) ListFloorPlans(ctx context.Context, req *connect.Request[ListFloorPlansRequest]) (*connect.Response[ListFloorPlansResponse], error) {
	return c.listFloorPlans.CallUnary(ctx, req)
}

func (c *PlannerServiceClient) RenameFloorPlan(ctx context.Context, req *connect.Request[RenameFloorPlanRequest]) (*connect.Response[RenameFloorPlanResponse], error) {
	return c.renameFloorPlan.CallUnary(ctx, req)
}

func (c *PlannerServiceClient) DeleteFloorPlan(ctx context.Context, req *connect.Request[DeleteFloorPlanRequest]) (*connect.Response[DeleteFloorPlanResponse], error) {
	return c.deleteFloorPlan.CallUnary(ctx, req)
}

func (c *PlannerServiceClient) SaveFloorPlan(ctx context.Context, req *connect.Request[SaveFloorPlanRequest]) (*connect.Response[SaveFloorPlanResponse], error) {
	return c.saveFloorPlan.CallUnary(ctx, req)
}

func (c *PlannerServiceClient) AutoAssign(ctx context.Context, req *connect.Request[AutoAssignRequest]) (*connect.Response[AutoAssignResponse], error) {
	return c.autoAssign.CallUnary(ctx, req)
}
