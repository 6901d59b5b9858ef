package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Parent tables must be created before the tables that reference them.
// Table and guest IDs are only unique within their floor plan, so every
// content key leads with floor_plan_id.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS floor_plans (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    name TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS plan_tables (
    floor_plan_id TEXT NOT NULL,
    id TEXT NOT NULL,
    sort_order INTEGER NOT NULL,
    name TEXT NOT NULL,
    table_type TEXT NOT NULL,
    capacity INTEGER NOT NULL,
    seats_per_side INTEGER NOT NULL DEFAULT 0,
    single_sided INTEGER NOT NULL DEFAULT 0,
    end_seat_left INTEGER NOT NULL DEFAULT 0,
    end_seat_right INTEGER NOT NULL DEFAULT 0,
    top_seats INTEGER NOT NULL DEFAULT 0,
    left_seats INTEGER NOT NULL DEFAULT 0,
    right_seats INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (floor_plan_id, id),
    FOREIGN KEY (floor_plan_id) REFERENCES floor_plans(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS seats (
    floor_plan_id TEXT NOT NULL,
    table_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    label TEXT NOT NULL,
    guest_id TEXT,
    PRIMARY KEY (floor_plan_id, table_id, position),
    FOREIGN KEY (floor_plan_id, table_id) REFERENCES plan_tables(floor_plan_id, id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS guests (
    floor_plan_id TEXT NOT NULL,
    id TEXT NOT NULL,
    sort_order INTEGER NOT NULL,
    name TEXT NOT NULL,
    guest_of TEXT,
    assigned_table_id TEXT,
    seat_position INTEGER,
    created_at INTEGER NOT NULL,
    PRIMARY KEY (floor_plan_id, id),
    FOREIGN KEY (floor_plan_id) REFERENCES floor_plans(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS guest_dietary (
    floor_plan_id TEXT NOT NULL,
    guest_id TEXT NOT NULL,
    idx INTEGER NOT NULL,
    restriction TEXT NOT NULL,
    PRIMARY KEY (floor_plan_id, guest_id, idx),
    FOREIGN KEY (floor_plan_id, guest_id) REFERENCES guests(floor_plan_id, id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_floor_plans_owner_id ON floor_plans(owner_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
