// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/tableplanner/internal/models"
	"github.com/mmynk/tableplanner/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection, so cascades work
	// no matter which connection runs the delete.
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateFloorPlan persists a new floor plan and its contents.
func (s *SQLiteStore) CreateFloorPlan(ctx context.Context, plan *models.FloorPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if plan.CreatedAt == 0 {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = plan.CreatedAt
	if plan.Name == "" {
		plan.Name = generateName(plan.CreatedAt)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO floor_plans (id, owner_id, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		plan.ID, plan.OwnerID, plan.Name, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert floor plan: %w", err)
	}

	if err := insertContents(ctx, tx, plan.ID, plan.Tables, plan.Guests); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetFloorPlan retrieves a floor plan by ID, including tables, seats and guests.
func (s *SQLiteStore) GetFloorPlan(ctx context.Context, planID string) (*models.FloorPlan, error) {
	plan := &models.FloorPlan{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, name, created_at, updated_at FROM floor_plans WHERE id = ?",
		planID,
	).Scan(&plan.ID, &plan.OwnerID, &plan.Name, &plan.CreatedAt, &plan.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("floor plan %s: %w", planID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get floor plan: %w", err)
	}

	if plan.Tables, err = s.loadTables(ctx, planID); err != nil {
		return nil, err
	}
	if plan.Guests, err = s.loadGuests(ctx, planID); err != nil {
		return nil, err
	}
	return plan, nil
}

// ListFloorPlans returns the owner's floor plans without their contents.
func (s *SQLiteStore) ListFloorPlans(ctx context.Context, ownerID string) ([]models.FloorPlan, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, name, created_at, updated_at FROM floor_plans WHERE owner_id = ? ORDER BY updated_at DESC, name",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list floor plans: %w", err)
	}
	defer rows.Close()

	plans := []models.FloorPlan{}
	for rows.Next() {
		var p models.FloorPlan
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan floor plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate floor plans: %w", err)
	}
	return plans, nil
}

// RenameFloorPlan updates the plan name.
func (s *SQLiteStore) RenameFloorPlan(ctx context.Context, planID, name string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE floor_plans SET name = ?, updated_at = ? WHERE id = ?",
		name, time.Now().Unix(), planID,
	)
	if err != nil {
		return fmt.Errorf("failed to rename floor plan: %w", err)
	}
	return requireRow(res, planID)
}

// SaveFloorPlan replaces the plan's tables and guests.
func (s *SQLiteStore) SaveFloorPlan(ctx context.Context, planID string, tables []models.Table, guests []models.Guest) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE floor_plans SET updated_at = ? WHERE id = ?",
		time.Now().Unix(), planID,
	)
	if err != nil {
		return fmt.Errorf("failed to update floor plan: %w", err)
	}
	if err := requireRow(res, planID); err != nil {
		return err
	}

	// Seats and dietary rows cascade from their parents.
	if _, err := tx.ExecContext(ctx, "DELETE FROM plan_tables WHERE floor_plan_id = ?", planID); err != nil {
		return fmt.Errorf("failed to clear tables: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM guests WHERE floor_plan_id = ?", planID); err != nil {
		return fmt.Errorf("failed to clear guests: %w", err)
	}

	if err := insertContents(ctx, tx, planID, tables, guests); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteFloorPlan removes a plan. Tables, seats and guests cascade.
func (s *SQLiteStore) DeleteFloorPlan(ctx context.Context, planID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM floor_plans WHERE id = ?", planID)
	if err != nil {
		return fmt.Errorf("failed to delete floor plan: %w", err)
	}
	return requireRow(res, planID)
}

func requireRow(res sql.Result, planID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("floor plan %s: %w", planID, storage.ErrNotFound)
	}
	return nil
}

// generateName creates a default plan name from its creation date.
func generateName(createdAt int64) string {
	return fmt.Sprintf("Floor plan - %s", time.Unix(createdAt, 0).Format("Jan 2, 2006"))
}
