// Package models defines the core domain models for the table planner.
//
// # Models
//
//   - FloorPlan: one event layout owned by a user, holding tables and guests
//   - Table: a table of a given shape with an ordered seat array
//   - Seat: one indexed position at a table
//   - Guest: an invited person, optionally the companion of another guest
//   - User: a registered account that owns floor plans
//
// # Relationships
//
// Relationships are expressed with ID strings rather than pointers:
//
//  1. Guest.AssignedTableID and Guest.SeatPosition point at a table seat
//  2. Seat.GuestID points back at the guest sitting there
//  3. Table.AssignedGuests lists the guests seated at the table
//  4. Guest.GuestOf names the host guest of a companion
//
// An empty string means "none". The seat/guest links must agree in both
// directions; only the seating engine rewrites them.
package models
