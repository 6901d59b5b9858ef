// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tableplanner/internal/models"
)

// ErrNotFound is wrapped by stores when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for floor plan and user storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateFloorPlan persists a new floor plan with its tables and guests.
	// The ID, CreatedAt and UpdatedAt fields are populated by the store.
	CreateFloorPlan(ctx context.Context, plan *models.FloorPlan) error

	// GetFloorPlan retrieves a floor plan with all tables, seats and guests.
	GetFloorPlan(ctx context.Context, planID string) (*models.FloorPlan, error)

	// ListFloorPlans returns the owner's plans without tables or guests,
	// most recently updated first.
	ListFloorPlans(ctx context.Context, ownerID string) ([]models.FloorPlan, error)

	// RenameFloorPlan changes a plan's name.
	RenameFloorPlan(ctx context.Context, planID, name string) error

	// SaveFloorPlan replaces the plan's tables and guests in one transaction.
	SaveFloorPlan(ctx context.Context, planID string, tables []models.Table, guests []models.Guest) error

	// DeleteFloorPlan removes a plan and everything in it.
	DeleteFloorPlan(ctx context.Context, planID string) error

	// CreateUser inserts a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil and no error when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil and no error when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
