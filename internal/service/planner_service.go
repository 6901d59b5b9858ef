package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/tableplanner/internal/metrics"
	"github.com/mmynk/tableplanner/internal/middleware"
	"github.com/mmynk/tableplanner/internal/models"
	"github.com/mmynk/tableplanner/internal/seating"
	"github.com/mmynk/tableplanner/internal/storage"
	"github.com/mmynk/tableplanner/pkg/plannerapi"
)

var _ plannerapi.PlannerServiceHandler = (*PlannerService)(nil)

// PlannerService implements the Connect PlannerService.
type PlannerService struct {
	store    storage.Store
	metrics  *metrics.Metrics
	maxItems int
}

// NewPlannerService creates a PlannerService backed by store. maxItems caps
// the tables and guests accepted per plan; 0 uses models.MaxBulkItems.
// m may be nil.
func NewPlannerService(store storage.Store, m *metrics.Metrics, maxItems int) *PlannerService {
	if maxItems <= 0 {
		maxItems = models.MaxBulkItems
	}
	return &PlannerService{store: store, metrics: m, maxItems: maxItems}
}

// PreviewAssignment runs the seating engine on the submitted guests and
// tables without touching storage.
func (s *PlannerService) PreviewAssignment(ctx context.Context, req *connect.Request[plannerapi.PreviewAssignmentRequest]) (*connect.Response[plannerapi.PreviewAssignmentResponse], error) {
	if err := models.ValidateContents(req.Msg.Tables, req.Msg.Guests, s.maxItems); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	cfg, err := assignmentConfig(req.Msg.Options)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	res := s.assign(req.Msg.Guests, req.Msg.Tables, cfg)
	return connect.NewResponse(&plannerapi.PreviewAssignmentResponse{
		Guests:  res.Guests,
		Tables:  res.Tables,
		Outcome: outcomeOf(res),
	}), nil
}

// CreateFloorPlan stores a new plan owned by the caller.
func (s *PlannerService) CreateFloorPlan(ctx context.Context, req *connect.Request[plannerapi.CreateFloorPlanRequest]) (*connect.Response[plannerapi.CreateFloorPlanResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Name != "" {
		if err := models.ValidateName(req.Msg.Name); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
	}
	if err := models.ValidateContents(req.Msg.Tables, req.Msg.Guests, s.maxItems); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	plan := &models.FloorPlan{
		OwnerID: userID,
		Name:    req.Msg.Name,
		Tables:  req.Msg.Tables,
		Guests:  req.Msg.Guests,
	}
	if err := s.store.CreateFloorPlan(ctx, plan); err != nil {
		slog.Error("CreateFloorPlan failed", "user_id", userID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Floor plan created", "floor_plan_id", plan.ID, "user_id", userID, "tables", len(plan.Tables), "guest_count", len(plan.Guests))
	return connect.NewResponse(&plannerapi.CreateFloorPlanResponse{FloorPlan: *plan}), nil
}

// GetFloorPlan returns one of the caller's plans with all its contents.
func (s *PlannerService) GetFloorPlan(ctx context.Context, req *connect.Request[plannerapi.GetFloorPlanRequest]) (*connect.Response[plannerapi.GetFloorPlanResponse], error) {
	plan, err := s.ownedPlan(ctx, req.Msg.FloorPlanID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&plannerapi.GetFloorPlanResponse{FloorPlan: *plan}), nil
}

// ListFloorPlans lists the caller's plans, most recently updated first.
func (s *PlannerService) ListFloorPlans(ctx context.Context, req *connect.Request[plannerapi.ListFloorPlansRequest]) (*connect.Response[plannerapi.ListFloorPlansResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := s.store.ListFloorPlans(ctx, userID)
	if err != nil {
		slog.Error("ListFloorPlans failed", "user_id", userID, "error", err)
		return nil, storeError(err)
	}

	summaries := make([]plannerapi.FloorPlanSummary, len(plans))
	for i, p := range plans {
		summaries[i] = plannerapi.FloorPlanSummary{
			ID:        p.ID,
			Name:      p.Name,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}
	}
	return connect.NewResponse(&plannerapi.ListFloorPlansResponse{FloorPlans: summaries}), nil
}

// RenameFloorPlan changes the name of one of the caller's plans.
func (s *PlannerService) RenameFloorPlan(ctx context.Context, req *connect.Request[plannerapi.RenameFloorPlanRequest]) (*connect.Response[plannerapi.RenameFloorPlanResponse], error) {
	if err := models.ValidateName(req.Msg.Name); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	plan, err := s.ownedPlan(ctx, req.Msg.FloorPlanID)
	if err != nil {
		return nil, err
	}

	if err := s.store.RenameFloorPlan(ctx, plan.ID, req.Msg.Name); err != nil {
		slog.Error("RenameFloorPlan failed", "floor_plan_id", plan.ID, "error", err)
		return nil, storeError(err)
	}
	return connect.NewResponse(&plannerapi.RenameFloorPlanResponse{}), nil
}

// DeleteFloorPlan removes one of the caller's plans.
func (s *PlannerService) DeleteFloorPlan(ctx context.Context, req *connect.Request[plannerapi.DeleteFloorPlanRequest]) (*connect.Response[plannerapi.DeleteFloorPlanResponse], error) {
	plan, err := s.ownedPlan(ctx, req.Msg.FloorPlanID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteFloorPlan(ctx, plan.ID); err != nil {
		slog.Error("DeleteFloorPlan failed", "floor_plan_id", plan.ID, "error", err)
		return nil, storeError(err)
	}
	slog.Info("Floor plan deleted", "floor_plan_id", plan.ID)
	return connect.NewResponse(&plannerapi.DeleteFloorPlanResponse{}), nil
}

// SaveFloorPlan replaces the tables and guests of one of the caller's plans.
func (s *PlannerService) SaveFloorPlan(ctx context.Context, req *connect.Request[plannerapi.SaveFloorPlanRequest]) (*connect.Response[plannerapi.SaveFloorPlanResponse], error) {
	if err := models.ValidateContents(req.Msg.Tables, req.Msg.Guests, s.maxItems); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	plan, err := s.ownedPlan(ctx, req.Msg.FloorPlanID)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveFloorPlan(ctx, plan.ID, req.Msg.Tables, req.Msg.Guests); err != nil {
		slog.Error("SaveFloorPlan failed", "floor_plan_id", plan.ID, "error", err)
		return nil, storeError(err)
	}
	slog.Debug("Floor plan saved", "floor_plan_id", plan.ID, "tables", len(req.Msg.Tables), "guest_count", len(req.Msg.Guests))
	return connect.NewResponse(&plannerapi.SaveFloorPlanResponse{}), nil
}

// AutoAssign reseats every guest of a stored plan and saves the result.
func (s *PlannerService) AutoAssign(ctx context.Context, req *connect.Request[plannerapi.AutoAssignRequest]) (*connect.Response[plannerapi.AutoAssignResponse], error) {
	cfg, err := assignmentConfig(req.Msg.Options)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	plan, err := s.ownedPlan(ctx, req.Msg.FloorPlanID)
	if err != nil {
		return nil, err
	}

	res := s.assign(plan.Guests, plan.Tables, cfg)
	if len(plan.Guests) > 0 && len(plan.Tables) > 0 {
		if err := s.store.SaveFloorPlan(ctx, plan.ID, res.Tables, res.Guests); err != nil {
			slog.Error("AutoAssign save failed", "floor_plan_id", plan.ID, "error", err)
			return nil, storeError(err)
		}
		plan.Tables, plan.Guests = res.Tables, res.Guests
		plan.UpdatedAt = time.Now().Unix()
	}

	slog.Info("Floor plan auto-assigned", "floor_plan_id", plan.ID, "assigned", res.AssignedCount, "unassigned", res.UnassignedCount)
	return connect.NewResponse(&plannerapi.AutoAssignResponse{
		FloorPlan: *plan,
		Outcome:   outcomeOf(res),
	}), nil
}

func (s *PlannerService) assign(guests []models.Guest, tables []models.Table, cfg seating.Config) seating.Result {
	start := time.Now()
	res := seating.Assign(guests, tables, cfg)
	s.metrics.ObserveAssignment(res, time.Since(start))
	return res
}

// ownedPlan loads a plan and checks that the caller owns it.
func (s *PlannerService) ownedPlan(ctx context.Context, planID string) (*models.FloorPlan, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if planID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("floor_plan_id is required"))
	}

	plan, err := s.store.GetFloorPlan(ctx, planID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Error("GetFloorPlan failed", "floor_plan_id", planID, "error", err)
		}
		return nil, storeError(err)
	}
	if plan.OwnerID != userID {
		slog.Warn("Floor plan access denied", "floor_plan_id", planID, "user_id", userID)
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("floor plan %s belongs to another user", planID))
	}
	return plan, nil
}

func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errors.New("authentication required"))
	}
	return userID, nil
}

func storeError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

func assignmentConfig(opts plannerapi.AssignmentOptions) (seating.Config, error) {
	placement, err := seating.ParsePlacement(opts.CompanionPlacement)
	if err != nil {
		return seating.Config{}, err
	}
	cfg := seating.Config{
		BalanceGuests: opts.BalanceGuests,
		Randomize:     opts.Randomize,
		Placement:     placement,
		Logger:        slog.Default(),
	}
	if opts.Seed != nil {
		cfg.Rand = rand.New(rand.NewPCG(*opts.Seed, *opts.Seed))
	}
	return cfg, nil
}

func outcomeOf(res seating.Result) plannerapi.AssignmentOutcome {
	return plannerapi.AssignmentOutcome{
		Success:         res.Success,
		Message:         res.Message,
		UnassignedCount: res.UnassignedCount,
		AssignedCount:   res.AssignedCount,
		PairsFormed:     res.PairsFormed,
		PairsTogether:   res.PairsTogether,
	}
}
