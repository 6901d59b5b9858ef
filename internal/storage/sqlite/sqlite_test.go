package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/tableplanner/internal/models"
	"github.com/mmynk/tableplanner/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seatedPlan() *models.FloorPlan {
	round := models.NewRoundTable("Round", 4)
	line := models.NewLineTable("Head", 2, false, true, false)

	alice := models.NewGuest("Alice", models.DietVegan, models.DietLactoseIntolerant)
	bob := models.NewGuest("Bob")
	bob.GuestOf = alice.ID

	pos := 2
	alice.AssignedTableID = round.ID
	alice.SeatPosition = &pos
	round.Seats[2].GuestID = alice.ID
	round.AssignedGuests = []string{alice.ID}

	return &models.FloorPlan{
		OwnerID: "owner-1",
		Name:    "Wedding",
		Tables:  []models.Table{round, line},
		Guests:  []models.Guest{alice, bob},
	}
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateFloorPlan generates ID, timestamps and name", func(t *testing.T) {
		plan := &models.FloorPlan{OwnerID: "owner-1"}
		if err := store.CreateFloorPlan(ctx, plan); err != nil {
			t.Fatalf("CreateFloorPlan failed: %v", err)
		}
		if plan.ID == "" {
			t.Error("Expected plan ID to be generated")
		}
		if plan.CreatedAt == 0 || plan.UpdatedAt == 0 {
			t.Error("Expected timestamps to be set")
		}
		if !strings.HasPrefix(plan.Name, "Floor plan - ") {
			t.Errorf("Unexpected generated name: %s", plan.Name)
		}
	})

	t.Run("GetFloorPlan round-trips tables, seats and guests", func(t *testing.T) {
		original := seatedPlan()
		if err := store.CreateFloorPlan(ctx, original); err != nil {
			t.Fatalf("CreateFloorPlan failed: %v", err)
		}

		got, err := store.GetFloorPlan(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetFloorPlan failed: %v", err)
		}

		if got.Name != "Wedding" || got.OwnerID != "owner-1" {
			t.Errorf("Header mismatch: got %q owned by %q", got.Name, got.OwnerID)
		}
		if len(got.Tables) != 2 {
			t.Fatalf("Expected 2 tables, got %d", len(got.Tables))
		}
		if got.Tables[0].Name != "Round" || got.Tables[1].Name != "Head" {
			t.Errorf("Tables out of order: %s, %s", got.Tables[0].Name, got.Tables[1].Name)
		}
		if len(got.Tables[1].Seats) != 5 || !got.Tables[1].EndSeatLeft {
			t.Errorf("Line table shape lost: %+v", got.Tables[1])
		}
		if got.Tables[0].Seats[2].GuestID != original.Guests[0].ID {
			t.Errorf("Seat 2 guest = %q, want %q", got.Tables[0].Seats[2].GuestID, original.Guests[0].ID)
		}
		if len(got.Tables[0].AssignedGuests) != 1 {
			t.Errorf("Expected AssignedGuests rebuilt from seats, got %v", got.Tables[0].AssignedGuests)
		}

		alice, bob := got.Guests[0], got.Guests[1]
		if alice.SeatPosition == nil || *alice.SeatPosition != 2 {
			t.Errorf("Alice seat position lost: %v", alice.SeatPosition)
		}
		if len(alice.DietaryRestrictions) != 2 || alice.DietaryRestrictions[0] != models.DietVegan {
			t.Errorf("Alice dietary restrictions = %v", alice.DietaryRestrictions)
		}
		if bob.GuestOf != alice.ID {
			t.Errorf("Bob guestOf = %q, want %q", bob.GuestOf, alice.ID)
		}
		if bob.IsAssigned() || bob.SeatPosition != nil {
			t.Error("Bob should be unassigned")
		}
		if err := models.ValidateContents(got.Tables, got.Guests, 0); err != nil {
			t.Errorf("Loaded plan is inconsistent: %v", err)
		}
	})

	t.Run("GetFloorPlan returns ErrNotFound for nonexistent plan", func(t *testing.T) {
		_, err := store.GetFloorPlan(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("SaveFloorPlan replaces contents", func(t *testing.T) {
		plan := seatedPlan()
		if err := store.CreateFloorPlan(ctx, plan); err != nil {
			t.Fatalf("CreateFloorPlan failed: %v", err)
		}

		tables := []models.Table{models.NewUShapeTable("U", 2, 1, 1)}
		guests := []models.Guest{plan.Guests[1]}
		guests[0].GuestOf = ""
		if err := store.SaveFloorPlan(ctx, plan.ID, tables, guests); err != nil {
			t.Fatalf("SaveFloorPlan failed: %v", err)
		}

		got, err := store.GetFloorPlan(ctx, plan.ID)
		if err != nil {
			t.Fatalf("GetFloorPlan failed: %v", err)
		}
		if len(got.Tables) != 1 || got.Tables[0].TableType != models.TableUShape {
			t.Errorf("Expected the single U table, got %+v", got.Tables)
		}
		if len(got.Guests) != 1 || got.Guests[0].Name != "Bob" {
			t.Errorf("Expected only Bob, got %+v", got.Guests)
		}
	})

	t.Run("SaveFloorPlan on missing plan fails", func(t *testing.T) {
		err := store.SaveFloorPlan(ctx, "missing", nil, nil)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Plans may reuse table and guest IDs", func(t *testing.T) {
		first := seatedPlan()
		first.OwnerID = "owner-3"
		if err := store.CreateFloorPlan(ctx, first); err != nil {
			t.Fatalf("CreateFloorPlan failed: %v", err)
		}

		// An imported copy keeps the IDs from the source file.
		second := &models.FloorPlan{OwnerID: "owner-4", Name: "Wedding copy"}
		for _, tbl := range first.Tables {
			second.Tables = append(second.Tables, tbl.Clone())
		}
		for _, g := range first.Guests {
			second.Guests = append(second.Guests, g.Clone())
		}
		if err := store.CreateFloorPlan(ctx, second); err != nil {
			t.Fatalf("CreateFloorPlan with shared IDs failed: %v", err)
		}
		if second.Tables[0].ID != first.Tables[0].ID || second.Guests[0].ID != first.Guests[0].ID {
			t.Fatal("Expected the copy to keep the original IDs")
		}

		// Rewriting one plan must leave the other untouched.
		if err := store.SaveFloorPlan(ctx, second.ID, second.Tables[1:], second.Guests[1:]); err != nil {
			t.Fatalf("SaveFloorPlan failed: %v", err)
		}

		got, err := store.GetFloorPlan(ctx, first.ID)
		if err != nil {
			t.Fatalf("GetFloorPlan failed: %v", err)
		}
		if len(got.Tables) != 2 || len(got.Tables[0].Seats) != 4 || len(got.Tables[1].Seats) != 5 {
			t.Errorf("First plan tables changed: %+v", got.Tables)
		}
		if got.Tables[0].Seats[2].GuestID != first.Guests[0].ID {
			t.Errorf("First plan lost Alice's seat: %+v", got.Tables[0].Seats)
		}
		if len(got.Guests) != 2 || len(got.Guests[0].DietaryRestrictions) != 2 {
			t.Errorf("First plan guests changed: %+v", got.Guests)
		}

		copied, err := store.GetFloorPlan(ctx, second.ID)
		if err != nil {
			t.Fatalf("GetFloorPlan failed: %v", err)
		}
		if len(copied.Tables) != 1 || copied.Tables[0].Name != "Head" {
			t.Errorf("Copy tables = %+v", copied.Tables)
		}
		if len(copied.Guests) != 1 || copied.Guests[0].Name != "Bob" {
			t.Errorf("Copy guests = %+v", copied.Guests)
		}

		if err := store.DeleteFloorPlan(ctx, second.ID); err != nil {
			t.Fatalf("DeleteFloorPlan failed: %v", err)
		}
		got, err = store.GetFloorPlan(ctx, first.ID)
		if err != nil {
			t.Fatalf("GetFloorPlan after deleting the copy failed: %v", err)
		}
		if len(got.Tables) != 2 || len(got.Guests) != 2 || len(got.Guests[0].DietaryRestrictions) != 2 {
			t.Errorf("Deleting the copy removed shared rows: %+v", got)
		}
	})

	t.Run("Rename, list and delete", func(t *testing.T) {
		plan := &models.FloorPlan{OwnerID: "owner-2", Name: "Gala"}
		if err := store.CreateFloorPlan(ctx, plan); err != nil {
			t.Fatalf("CreateFloorPlan failed: %v", err)
		}
		if err := store.RenameFloorPlan(ctx, plan.ID, "Winter Gala"); err != nil {
			t.Fatalf("RenameFloorPlan failed: %v", err)
		}

		plans, err := store.ListFloorPlans(ctx, "owner-2")
		if err != nil {
			t.Fatalf("ListFloorPlans failed: %v", err)
		}
		if len(plans) != 1 || plans[0].Name != "Winter Gala" {
			t.Errorf("Unexpected plans: %+v", plans)
		}

		if err := store.DeleteFloorPlan(ctx, plan.ID); err != nil {
			t.Fatalf("DeleteFloorPlan failed: %v", err)
		}
		if err := store.DeleteFloorPlan(ctx, plan.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Second delete: expected ErrNotFound, got %v", err)
		}
		plans, _ = store.ListFloorPlans(ctx, "owner-2")
		if len(plans) != 0 {
			t.Errorf("Expected no plans after delete, got %d", len(plans))
		}
	})
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("Ada@Example.com ", "Ada", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "ada@example.com")
	if err != nil || byEmail == nil {
		t.Fatalf("GetUserByEmail = %v, %v", byEmail, err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("ID mismatch: got %s, want %s", byEmail.ID, user.ID)
	}

	byID, err := store.GetUserByID(ctx, user.ID)
	if err != nil || byID == nil || byID.DisplayName != "Ada" {
		t.Fatalf("GetUserByID = %+v, %v", byID, err)
	}

	missing, err := store.GetUserByEmail(ctx, "nobody@example.com")
	if err != nil || missing != nil {
		t.Errorf("Expected nil user and nil error, got %+v, %v", missing, err)
	}

	if err := store.CreateUser(ctx, models.NewUser("ada@example.com", "Ada 2", "hash")); err == nil {
		t.Error("Expected duplicate email to fail")
	}
}

func TestGenerateName(t *testing.T) {
	got := generateName(0)
	if !strings.HasPrefix(got, "Floor plan - ") {
		t.Errorf("generateName(0) = %q", got)
	}
}
