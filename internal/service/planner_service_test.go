package service

import (
	"context"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tableplanner/internal/metrics"
	"github.com/mmynk/tableplanner/internal/models"
	"github.com/mmynk/tableplanner/pkg/plannerapi"
)

func weddingGuests() []models.Guest {
	alice := models.NewGuest("Alice", models.DietVegan)
	bob := models.NewGuest("Bob")
	bob.GuestOf = alice.ID
	carol := models.NewGuest("Carol")
	dave := models.NewGuest("Dave")
	return []models.Guest{alice, bob, carol, dave}
}

func TestPreviewAssignment(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	token := env.signUp(t, "host@example.com")

	t.Run("seats everyone", func(t *testing.T) {
		guests := weddingGuests()
		tables := []models.Table{models.NewRoundTable("Round", 4), models.NewRoundTable("Round 2", 4)}

		resp, err := env.planner.PreviewAssignment(ctx, withToken(&plannerapi.PreviewAssignmentRequest{
			Guests:  guests,
			Tables:  tables,
			Options: plannerapi.AssignmentOptions{BalanceGuests: true, CompanionPlacement: "next-to"},
		}, token))
		require.NoError(t, err)

		out := resp.Msg.Outcome
		assert.True(t, out.Success)
		assert.Equal(t, 4, out.AssignedCount)
		assert.Equal(t, 0, out.UnassignedCount)
		assert.Equal(t, 1, out.PairsFormed)
		assert.Equal(t, 1, out.PairsTogether)
		assert.Equal(t, "Assigned all 4 guests (1 of 1 pairs seated together)", out.Message)

		require.Len(t, resp.Msg.Guests, 4)
		for i, g := range resp.Msg.Guests {
			assert.Equal(t, guests[i].ID, g.ID, "guests keep input order")
			assert.True(t, g.IsAssigned())
		}
		assert.Equal(t, resp.Msg.Guests[0].AssignedTableID, resp.Msg.Guests[1].AssignedTableID)
		require.NoError(t, models.ValidateContents(resp.Msg.Tables, resp.Msg.Guests, 0))
	})

	t.Run("reports overflow", func(t *testing.T) {
		resp, err := env.planner.PreviewAssignment(ctx, withToken(&plannerapi.PreviewAssignmentRequest{
			Guests:  weddingGuests(),
			Tables:  []models.Table{models.NewRoundTable("Small", 3)},
			Options: plannerapi.AssignmentOptions{CompanionPlacement: "none"},
		}, token))
		require.NoError(t, err)
		assert.False(t, resp.Msg.Outcome.Success)
		assert.Equal(t, "Assigned 3. 1 couldn't fit", resp.Msg.Outcome.Message)
	})

	t.Run("seeded randomization is reproducible", func(t *testing.T) {
		guests := weddingGuests()
		tables := []models.Table{models.NewRoundTable("A", 2), models.NewRoundTable("B", 2)}
		seed := uint64(42)
		req := &plannerapi.PreviewAssignmentRequest{
			Guests:  guests,
			Tables:  tables,
			Options: plannerapi.AssignmentOptions{Randomize: true, Seed: &seed, CompanionPlacement: "none"},
		}

		first, err := env.planner.PreviewAssignment(ctx, withToken(req, token))
		require.NoError(t, err)
		second, err := env.planner.PreviewAssignment(ctx, withToken(req, token))
		require.NoError(t, err)
		assert.Equal(t, first.Msg.Guests, second.Msg.Guests)
	})

	t.Run("unknown placement", func(t *testing.T) {
		_, err := env.planner.PreviewAssignment(ctx, withToken(&plannerapi.PreviewAssignmentRequest{
			Guests:  weddingGuests(),
			Tables:  []models.Table{models.NewRoundTable("Round", 4)},
			Options: plannerapi.AssignmentOptions{CompanionPlacement: "on-lap"},
		}, token))
		requireCode(t, connect.CodeInvalidArgument, err)
	})

	t.Run("malformed table", func(t *testing.T) {
		broken := models.NewRoundTable("Round", 4)
		broken.Seats = broken.Seats[:2]
		_, err := env.planner.PreviewAssignment(ctx, withToken(&plannerapi.PreviewAssignmentRequest{
			Guests: weddingGuests(),
			Tables: []models.Table{broken},
		}, token))
		requireCode(t, connect.CodeInvalidArgument, err)
	})

	t.Run("too many guests", func(t *testing.T) {
		guests := make([]models.Guest, 21)
		for i := range guests {
			guests[i] = models.NewGuest("Guest")
		}
		_, err := env.planner.PreviewAssignment(ctx, withToken(&plannerapi.PreviewAssignmentRequest{
			Guests: guests,
			Tables: []models.Table{models.NewRoundTable("Round", 4)},
		}, token))
		requireCode(t, connect.CodeInvalidArgument, err)
	})

	t.Run("requires auth", func(t *testing.T) {
		_, err := env.planner.PreviewAssignment(ctx, connect.NewRequest(&plannerapi.PreviewAssignmentRequest{}))
		requireCode(t, connect.CodeUnauthenticated, err)
	})
}

func TestFloorPlanLifecycle(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	token := env.signUp(t, "host@example.com")

	created, err := env.planner.CreateFloorPlan(ctx, withToken(&plannerapi.CreateFloorPlanRequest{
		Tables: []models.Table{models.NewLineTable("Head", 2, false, true, true)},
		Guests: weddingGuests(),
	}, token))
	require.NoError(t, err)
	planID := created.Msg.FloorPlan.ID
	require.NotEmpty(t, planID)
	assert.True(t, strings.HasPrefix(created.Msg.FloorPlan.Name, "Floor plan - "), "default name: %s", created.Msg.FloorPlan.Name)

	t.Run("get", func(t *testing.T) {
		resp, err := env.planner.GetFloorPlan(ctx, withToken(&plannerapi.GetFloorPlanRequest{FloorPlanID: planID}, token))
		require.NoError(t, err)
		assert.Len(t, resp.Msg.FloorPlan.Tables, 1)
		assert.Len(t, resp.Msg.FloorPlan.Guests, 4)
		assert.Equal(t, 6, resp.Msg.FloorPlan.Tables[0].Capacity)
	})

	t.Run("rename", func(t *testing.T) {
		_, err := env.planner.RenameFloorPlan(ctx, withToken(&plannerapi.RenameFloorPlanRequest{FloorPlanID: planID, Name: "Reception"}, token))
		require.NoError(t, err)

		_, err = env.planner.RenameFloorPlan(ctx, withToken(&plannerapi.RenameFloorPlanRequest{FloorPlanID: planID, Name: "  "}, token))
		requireCode(t, connect.CodeInvalidArgument, err)
	})

	t.Run("list", func(t *testing.T) {
		resp, err := env.planner.ListFloorPlans(ctx, withToken(&plannerapi.ListFloorPlansRequest{}, token))
		require.NoError(t, err)
		require.Len(t, resp.Msg.FloorPlans, 1)
		assert.Equal(t, "Reception", resp.Msg.FloorPlans[0].Name)
	})

	t.Run("auto assign persists seats", func(t *testing.T) {
		resp, err := env.planner.AutoAssign(ctx, withToken(&plannerapi.AutoAssignRequest{
			FloorPlanID: planID,
			Options:     plannerapi.AssignmentOptions{CompanionPlacement: "across"},
		}, token))
		require.NoError(t, err)
		assert.True(t, resp.Msg.Outcome.Success)
		assert.Equal(t, 1, resp.Msg.Outcome.PairsTogether)

		got, err := env.planner.GetFloorPlan(ctx, withToken(&plannerapi.GetFloorPlanRequest{FloorPlanID: planID}, token))
		require.NoError(t, err)
		for _, g := range got.Msg.FloorPlan.Guests {
			assert.True(t, g.IsAssigned(), "guest %s stored unassigned", g.Name)
		}
		assert.Len(t, got.Msg.FloorPlan.Tables[0].AssignedGuests, 4)
		require.NoError(t, models.ValidateContents(got.Msg.FloorPlan.Tables, got.Msg.FloorPlan.Guests, 0))
	})

	t.Run("save replaces contents", func(t *testing.T) {
		_, err := env.planner.SaveFloorPlan(ctx, withToken(&plannerapi.SaveFloorPlanRequest{
			FloorPlanID: planID,
			Tables:      []models.Table{models.NewUShapeTable("U", 2, 1, 1)},
			Guests:      []models.Guest{models.NewGuest("Eve")},
		}, token))
		require.NoError(t, err)

		got, err := env.planner.GetFloorPlan(ctx, withToken(&plannerapi.GetFloorPlanRequest{FloorPlanID: planID}, token))
		require.NoError(t, err)
		require.Len(t, got.Msg.FloorPlan.Tables, 1)
		assert.Equal(t, models.TableUShape, got.Msg.FloorPlan.Tables[0].TableType)
		require.Len(t, got.Msg.FloorPlan.Guests, 1)
		assert.Equal(t, "Eve", got.Msg.FloorPlan.Guests[0].Name)
	})

	t.Run("save rejects inconsistent links", func(t *testing.T) {
		table := models.NewRoundTable("Round", 2)
		table.Seats[0].GuestID = "ghost"
		table.AssignedGuests = []string{"ghost"}
		_, err := env.planner.SaveFloorPlan(ctx, withToken(&plannerapi.SaveFloorPlanRequest{
			FloorPlanID: planID,
			Tables:      []models.Table{table},
		}, token))
		requireCode(t, connect.CodeInvalidArgument, err)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := env.planner.DeleteFloorPlan(ctx, withToken(&plannerapi.DeleteFloorPlanRequest{FloorPlanID: planID}, token))
		require.NoError(t, err)

		_, err = env.planner.GetFloorPlan(ctx, withToken(&plannerapi.GetFloorPlanRequest{FloorPlanID: planID}, token))
		requireCode(t, connect.CodeNotFound, err)
	})
}

func TestFloorPlanOwnership(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	owner := env.signUp(t, "owner@example.com")
	other := env.signUp(t, "other@example.com")

	created, err := env.planner.CreateFloorPlan(ctx, withToken(&plannerapi.CreateFloorPlanRequest{Name: "Private"}, owner))
	require.NoError(t, err)
	planID := created.Msg.FloorPlan.ID

	_, err = env.planner.GetFloorPlan(ctx, withToken(&plannerapi.GetFloorPlanRequest{FloorPlanID: planID}, other))
	requireCode(t, connect.CodePermissionDenied, err)

	_, err = env.planner.AutoAssign(ctx, withToken(&plannerapi.AutoAssignRequest{FloorPlanID: planID}, other))
	requireCode(t, connect.CodePermissionDenied, err)

	_, err = env.planner.DeleteFloorPlan(ctx, withToken(&plannerapi.DeleteFloorPlanRequest{FloorPlanID: planID}, other))
	requireCode(t, connect.CodePermissionDenied, err)

	resp, err := env.planner.ListFloorPlans(ctx, withToken(&plannerapi.ListFloorPlansRequest{}, other))
	require.NoError(t, err)
	assert.Empty(t, resp.Msg.FloorPlans)

	_, err = env.planner.GetFloorPlan(ctx, withToken(&plannerapi.GetFloorPlanRequest{FloorPlanID: "missing"}, owner))
	requireCode(t, connect.CodeNotFound, err)
}

func TestPlannerMetrics(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	token := env.signUp(t, "host@example.com")

	_, err := env.planner.PreviewAssignment(ctx, withToken(&plannerapi.PreviewAssignmentRequest{
		Guests: weddingGuests(),
		Tables: []models.Table{models.NewRoundTable("Round", 4)},
	}, token))
	require.NoError(t, err)

	_, err = env.planner.PreviewAssignment(ctx, withToken(&plannerapi.PreviewAssignmentRequest{
		Guests: weddingGuests(),
		Tables: []models.Table{models.NewRoundTable("Round", 2)},
	}, token))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.AssignmentsTotal.WithLabelValues(metrics.OutcomeComplete)))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.AssignmentsTotal.WithLabelValues(metrics.OutcomePartial)))
	assert.Equal(t, 2.0, testutil.ToFloat64(env.metrics.RPCRequestsTotal.WithLabelValues(plannerapi.PlannerServicePreviewAssignmentProcedure, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.RPCRequestsTotal.WithLabelValues(plannerapi.AuthServiceRegisterProcedure, "ok")))
}
