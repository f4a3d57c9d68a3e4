package planning

import (
	"time"

	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
	"github.com/google/uuid"
)

// WeeklyPlan is the aggregate of seven day plans for one tenant starting on
// one date. It is mutated only through AssignMeal and PopulateLeftovers and is
// persisted wholesale; callers arrange at most one in-flight mutation per
// plan.
type WeeklyPlan struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	startingDate time.Time
	weekStartDay models.WeekStartDay
	days         [7]models.DayPlan

	// Frozen makes-lunch decisions for dinner assignments, keyed by date
	// string. Captured at assignment time, independent of the meal's
	// current catalog flags.
	dinnerMakesLunch map[string]bool
}

// New creates a weekly plan for the given tenant and start date, deriving the
// seven day plans. The start date must fall on the weekday named by
// weekStartDay. Pass uuid.Nil to have an ID generated.
func New(tenantID uuid.UUID, startingDate time.Time, weekStartDay models.WeekStartDay, id uuid.UUID) (*WeeklyPlan, error) {
	if !weekStartDay.Valid() {
		return nil, &models.ValidationError{Msg: "unknown week start day"}
	}
	start := truncateToDate(startingDate)
	if start.Weekday() != weekStartDay.Weekday() {
		return nil, &models.AlignmentError{Msg: "starting date must align with configured week start day"}
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	plan := &WeeklyPlan{
		id:               id,
		tenantID:         tenantID,
		startingDate:     start,
		weekStartDay:     weekStartDay,
		dinnerMakesLunch: make(map[string]bool),
	}
	for i := range plan.days {
		date := start.AddDate(0, 0, i)
		plan.days[i] = models.DayPlan{
			Date:     date,
			LongDay:  models.DayOfWeekFor(date),
			ShortDay: models.ShortDayFor(date),
		}
	}
	return plan, nil
}

func (p *WeeklyPlan) ID() uuid.UUID                     { return p.id }
func (p *WeeklyPlan) TenantID() uuid.UUID               { return p.tenantID }
func (p *WeeklyPlan) StartingDate() time.Time           { return p.startingDate }
func (p *WeeklyPlan) WeekStartDay() models.WeekStartDay { return p.weekStartDay }

// Days returns a copy of the seven day plans in calendar order.
func (p *WeeklyPlan) Days() [7]models.DayPlan {
	return p.days
}

// AssignMeal sets or clears a slot on the day matching date. A nil assignment
// clears the slot; clearing a dinner also drops its frozen makes-lunch
// decision. Leftover flags are untouched until PopulateLeftovers runs.
func (p *WeeklyPlan) AssignMeal(date time.Time, slot models.MealSlot, assignment *models.MealAssignment) error {
	if !slot.Valid() {
		return &models.ValidationError{Msg: "unknown meal slot"}
	}
	idx, err := p.dayIndex(date)
	if err != nil {
		return err
	}

	day := &p.days[idx]
	switch slot {
	case models.SlotLunch:
		if assignment == nil {
			day.LunchMealID = nil
		} else {
			mealID := assignment.MealID
			day.LunchMealID = &mealID
		}
		// A manual assignment or removal always leaves the slot non-leftover.
		day.IsLeftover = false
	case models.SlotDinner:
		key := dateKey(day.Date)
		if assignment == nil {
			day.DinnerMealID = nil
			delete(p.dinnerMakesLunch, key)
		} else {
			mealID := assignment.MealID
			day.DinnerMealID = &mealID
			p.dinnerMakesLunch[key] = assignment.MakesLunch
		}
	}
	return nil
}

// PopulateLeftovers recomputes leftover lunches from scratch. Every
// previously propagated lunch is cleared, then each day's dinner with a
// frozen makes-lunch decision fills the following day's lunch slot unless a
// manual lunch is already there. Manual assignments always win; the walk
// never wraps past the last day. Safe to call any number of times.
func (p *WeeklyPlan) PopulateLeftovers() {
	for i := range p.days {
		if p.days[i].IsLeftover {
			p.days[i].LunchMealID = nil
			p.days[i].IsLeftover = false
		}
	}

	for i := 0; i < len(p.days)-1; i++ {
		day := p.days[i]
		if day.DinnerMealID == nil || !p.dinnerMakesLunch[dateKey(day.Date)] {
			continue
		}
		next := &p.days[i+1]
		if next.LunchMealID != nil {
			continue
		}
		leftover := *day.DinnerMealID
		next.LunchMealID = &leftover
		next.IsLeftover = true
	}
}

// DayPlanFor returns the day plan matching the given calendar date.
func (p *WeeklyPlan) DayPlanFor(date time.Time) (models.DayPlan, error) {
	idx, err := p.dayIndex(date)
	if err != nil {
		return models.DayPlan{}, err
	}
	return p.days[idx], nil
}

// Snapshot maps the aggregate to its flat persisted shape, including the
// frozen dinner makes-lunch decisions.
func (p *WeeklyPlan) Snapshot() models.PlanSnapshot {
	assignments := make(map[string]bool, len(p.dinnerMakesLunch))
	for k, v := range p.dinnerMakesLunch {
		assignments[k] = v
	}
	return models.PlanSnapshot{
		ID:                p.id,
		TenantID:          p.tenantID,
		StartingDate:      p.startingDate,
		WeekStartDay:      p.weekStartDay,
		Days:              p.days,
		DinnerAssignments: assignments,
	}
}

// Rehydrate rebuilds an aggregate from a persisted snapshot. The snapshot's
// dinner-assignments map restores the frozen makes-lunch decisions; the week
// alignment invariant is re-checked so corrupt rows fail loudly.
func Rehydrate(snapshot models.PlanSnapshot) (*WeeklyPlan, error) {
	plan, err := New(snapshot.TenantID, snapshot.StartingDate, snapshot.WeekStartDay, snapshot.ID)
	if err != nil {
		return nil, err
	}
	plan.days = snapshot.Days
	for i := range plan.days {
		plan.days[i].Date = truncateToDate(plan.days[i].Date)
		plan.days[i].LongDay = models.DayOfWeekFor(plan.days[i].Date)
		plan.days[i].ShortDay = models.ShortDayFor(plan.days[i].Date)
	}
	for k, v := range snapshot.DinnerAssignments {
		plan.dinnerMakesLunch[k] = v
	}
	return plan, nil
}

func (p *WeeklyPlan) dayIndex(date time.Time) (int, error) {
	target := truncateToDate(date)
	for i := range p.days {
		if p.days[i].Date.Equal(target) {
			return i, nil
		}
	}
	return 0, &models.NotFoundError{Msg: "date not in planned week"}
}

func dateKey(t time.Time) string {
	return t.Format(models.DateLayout)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
