package plannerapi

import "github.com/mmynk/tableplanner/internal/models"

// AssignmentOptions configures an automatic seating run.
type AssignmentOptions struct {
	BalanceGuests bool `json:"balanceGuests"`
	Randomize     bool `json:"randomize"`
	// CompanionPlacement is "next-to", "across" or "none".
	CompanionPlacement string `json:"companionPlacement"`
	// Seed makes randomized runs reproducible when set.
	Seed *uint64 `json:"seed,omitempty"`
}

// AssignmentOutcome summarizes a seating run for display.
type AssignmentOutcome struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	UnassignedCount int    `json:"unassignedCount"`
	AssignedCount   int    `json:"assignedCount"`
	PairsFormed     int    `json:"pairsFormed"`
	PairsTogether   int    `json:"pairsTogether"`
}

// FloorPlanSummary is a floor plan without its tables and guests.
type FloorPlanSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// UserInfo is the public view of a user.
type UserInfo struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
}

type PreviewAssignmentRequest struct {
	Guests  []models.Guest    `json:"guests"`
	Tables  []models.Table    `json:"tables"`
	Options AssignmentOptions `json:"options"`
}

type PreviewAssignmentResponse struct {
	Guests  []models.Guest    `json:"guests"`
	Tables  []models.Table    `json:"tables"`
	Outcome AssignmentOutcome `json:"outcome"`
}

type CreateFloorPlanRequest struct {
	Name   string         `json:"name"`
	Tables []models.Table `json:"tables"`
	Guests []models.Guest `json:"guests"`
}

type CreateFloorPlanResponse struct {
	FloorPlan models.FloorPlan `json:"floorPlan"`
}

type GetFloorPlanRequest struct {
	FloorPlanID string `json:"floorPlanId"`
}

type GetFloorPlanResponse struct {
	FloorPlan models.FloorPlan `json:"floorPlan"`
}

type ListFloorPlansRequest struct{}

type ListFloorPlansResponse struct {
	FloorPlans []FloorPlanSummary `json:"floorPlans"`
}

type RenameFloorPlanRequest struct {
	FloorPlanID string `json:"floorPlanId"`
	Name        string `json:"name"`
}

type RenameFloorPlanResponse struct{}

type DeleteFloorPlanRequest struct {
	FloorPlanID string `json:"floorPlanId"`
}

type DeleteFloorPlanResponse struct{}

type SaveFloorPlanRequest struct {
	FloorPlanID string         `json:"floorPlanId"`
	Tables      []models.Table `json:"tables"`
	Guests      []models.Guest `json:"guests"`
}

type SaveFloorPlanResponse struct{}

type AutoAssignRequest struct {
	FloorPlanID string            `json:"floorPlanId"`
	Options     AssignmentOptions `json:"options"`
}

type AutoAssignResponse struct {
	FloorPlan models.FloorPlan  `json:"floorPlan"`
	Outcome   AssignmentOutcome `json:"outcome"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User UserInfo `json:"user"`
}
