package models

import (
	"time"

	"github.com/google/uuid"
)

// MealAssignment is the decision captured when a meal is put into a slot. For
// dinner slots MakesLunch is frozen at assignment time; later edits to the
// meal's catalog flags do not change past plans.
type MealAssignment struct {
	MealID     uuid.UUID `json:"meal_id"`
	MakesLunch bool      `json:"makes_lunch"`
}

// DayPlan is one calendar day inside a weekly plan. LongDay and ShortDay are
// derived from Date, never set independently. IsLeftover is true only when the
// lunch slot was filled by leftover propagation.
type DayPlan struct {
	Date         time.Time
	LongDay      DayOfWeek
	ShortDay     ShortDay
	LunchMealID  *uuid.UUID
	DinnerMealID *uuid.UUID
	IsLeftover   bool
}

// PlanSnapshot is the flat persisted shape of a weekly plan. DinnerAssignments
// carries the frozen makes-lunch decisions keyed by date string; that
// information lives only on the plan and cannot be re-derived from the meal
// catalog.
type PlanSnapshot struct {
	ID                uuid.UUID
	TenantID          uuid.UUID
	StartingDate      time.Time
	WeekStartDay      WeekStartDay
	Days              [7]DayPlan
	DinnerAssignments map[string]bool
}

// CreatePlanRequest is the body for POST /api/plans.
type CreatePlanRequest struct {
	StartingDate string       `json:"starting_date" binding:"required"`
	WeekStartDay WeekStartDay `json:"week_start_day" binding:"required"`
}

// AssignMealRequest is the body for PUT /api/plans/:id/meals. A nil
// Assignment clears the slot.
type AssignMealRequest struct {
	Date       string          `json:"date" binding:"required"`
	Slot       MealSlot        `json:"slot" binding:"required"`
	Assignment *MealAssignment `json:"assignment"`
}

// DayPlanResponse is the API shape for a single day.
type DayPlanResponse struct {
	Date         string     `json:"date"`
	LongDay      DayOfWeek  `json:"long_day"`
	ShortDay     ShortDay   `json:"short_day"`
	LunchMealID  *uuid.UUID `json:"lunch_meal_id,omitempty"`
	DinnerMealID *uuid.UUID `json:"dinner_meal_id,omitempty"`
	IsLeftover   bool       `json:"is_leftover"`
}

// PlanResponse is the API shape for a full weekly plan.
type PlanResponse struct {
	ID           uuid.UUID         `json:"id"`
	TenantID     uuid.UUID         `json:"tenant_id"`
	StartingDate string            `json:"starting_date"`
	WeekStartDay WeekStartDay      `json:"week_start_day"`
	Days         []DayPlanResponse `json:"days"`
}
