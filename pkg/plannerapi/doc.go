// Package plannerapi defines the Connect RPC surface of the table planner:
// procedure names, request/response messages, a JSON codec, and handler and
// client constructors for the PlannerService and AuthService.
//
// Messages are plain Go structs. Handlers and clients built here register
// Codec, so both sides speak application/json.
package plannerapi
