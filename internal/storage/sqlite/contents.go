package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tableplanner/internal/models"
)

// nullString maps "" to NULL.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// insertContents writes tables (with seats) and guests (with dietary tags)
// for a plan. Missing IDs are generated in place.
func insertContents(ctx context.Context, tx *sql.Tx, planID string, tables []models.Table, guests []models.Guest) error {
	for i := range tables {
		t := &tables[i]
		if t.ID == "" {
			t.ID = uuid.New().String()
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO plan_tables (floor_plan_id, id, sort_order, name, table_type, capacity,
				seats_per_side, single_sided, end_seat_left, end_seat_right, top_seats, left_seats, right_seats)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			planID, t.ID, i, t.Name, string(t.TableType), t.Capacity,
			t.SeatsPerSide, t.SingleSided, t.EndSeatLeft, t.EndSeatRight, t.TopSeats, t.LeftSeats, t.RightSeats,
		)
		if err != nil {
			return fmt.Errorf("failed to insert table: %w", err)
		}

		for _, seat := range t.Seats {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO seats (floor_plan_id, table_id, position, label, guest_id) VALUES (?, ?, ?, ?, ?)",
				planID, t.ID, seat.Position, seat.Label, nullString(seat.GuestID),
			)
			if err != nil {
				return fmt.Errorf("failed to insert seat: %w", err)
			}
		}
	}

	now := time.Now().Unix()
	for i := range guests {
		g := &guests[i]
		if g.ID == "" {
			g.ID = uuid.New().String()
		}
		if g.CreatedAt == 0 {
			g.CreatedAt = now
		}

		var seat interface{}
		if g.SeatPosition != nil {
			seat = *g.SeatPosition
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO guests (floor_plan_id, id, sort_order, name, guest_of, assigned_table_id, seat_position, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			planID, g.ID, i, g.Name, nullString(g.GuestOf), nullString(g.AssignedTableID), seat, g.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert guest: %w", err)
		}

		for j, r := range g.DietaryRestrictions {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO guest_dietary (floor_plan_id, guest_id, idx, restriction) VALUES (?, ?, ?, ?)",
				planID, g.ID, j, string(r),
			)
			if err != nil {
				return fmt.Errorf("failed to insert dietary restriction: %w", err)
			}
		}
	}
	return nil
}

// loadTables reads a plan's tables in saved order and rebuilds
// AssignedGuests from the occupied seats.
func (s *SQLiteStore) loadTables(ctx context.Context, planID string) ([]models.Table, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, table_type, capacity, seats_per_side, single_sided, end_seat_left, end_seat_right,
			top_seats, left_seats, right_seats
		 FROM plan_tables WHERE floor_plan_id = ? ORDER BY sort_order`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get tables: %w", err)
	}
	defer rows.Close()

	tables := []models.Table{}
	byID := make(map[string]int)
	for rows.Next() {
		var t models.Table
		var tableType string
		if err := rows.Scan(&t.ID, &t.Name, &tableType, &t.Capacity, &t.SeatsPerSide, &t.SingleSided,
			&t.EndSeatLeft, &t.EndSeatRight, &t.TopSeats, &t.LeftSeats, &t.RightSeats); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		t.TableType = models.TableType(tableType)
		t.Seats = []models.Seat{}
		t.AssignedGuests = []string{}
		byID[t.ID] = len(tables)
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tables: %w", err)
	}

	seatRows, err := s.db.QueryContext(ctx,
		`SELECT s.table_id, s.position, s.label, s.guest_id
		 FROM seats s JOIN plan_tables t ON t.floor_plan_id = s.floor_plan_id AND t.id = s.table_id
		 WHERE s.floor_plan_id = ? ORDER BY t.sort_order, s.position`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get seats: %w", err)
	}
	defer seatRows.Close()

	for seatRows.Next() {
		var tableID string
		var seat models.Seat
		var guestID sql.NullString
		if err := seatRows.Scan(&tableID, &seat.Position, &seat.Label, &guestID); err != nil {
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		t := &tables[byID[tableID]]
		if guestID.Valid {
			seat.GuestID = guestID.String
			t.AssignedGuests = append(t.AssignedGuests, guestID.String)
		}
		t.Seats = append(t.Seats, seat)
	}
	if err := seatRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate seats: %w", err)
	}
	return tables, nil
}

// loadGuests reads a plan's guests in saved order with their dietary tags.
func (s *SQLiteStore) loadGuests(ctx context.Context, planID string) ([]models.Guest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, guest_of, assigned_table_id, seat_position, created_at
		 FROM guests WHERE floor_plan_id = ? ORDER BY sort_order`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}
	defer rows.Close()

	guests := []models.Guest{}
	byID := make(map[string]int)
	for rows.Next() {
		var g models.Guest
		var guestOf, tableID sql.NullString
		var seat sql.NullInt64
		if err := rows.Scan(&g.ID, &g.Name, &guestOf, &tableID, &seat, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		g.GuestOf = guestOf.String
		g.AssignedTableID = tableID.String
		if seat.Valid {
			pos := int(seat.Int64)
			g.SeatPosition = &pos
		}
		g.DietaryRestrictions = []models.DietaryRestriction{}
		byID[g.ID] = len(guests)
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guests: %w", err)
	}

	dietRows, err := s.db.QueryContext(ctx,
		`SELECT d.guest_id, d.restriction
		 FROM guest_dietary d JOIN guests g ON g.floor_plan_id = d.floor_plan_id AND g.id = d.guest_id
		 WHERE d.floor_plan_id = ? ORDER BY g.sort_order, d.idx`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get dietary restrictions: %w", err)
	}
	defer dietRows.Close()

	for dietRows.Next() {
		var guestID, restriction string
		if err := dietRows.Scan(&guestID, &restriction); err != nil {
			return nil, fmt.Errorf("failed to scan dietary restriction: %w", err)
		}
		g := &guests[byID[guestID]]
		g.DietaryRestrictions = append(g.DietaryRestrictions, models.DietaryRestriction(restriction))
	}
	if err := dietRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dietary restrictions: %w", err)
	}
	return guests, nil
}
