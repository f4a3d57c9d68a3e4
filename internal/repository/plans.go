package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
	"github.com/denerose/VeganMealAppApi-sub000/internal/planning"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// PlanRepository persists weekly plan aggregates. Plans are written wholesale:
// the plan row plus all seven day rows go in one transaction, so a reader
// never observes a partially updated week.
type PlanRepository struct {
	db *pgxpool.Pool
}

func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create inserts a new plan. A second plan for the same tenant and start date
// trips the unique constraint and surfaces as a ConflictError.
func (r *PlanRepository) Create(ctx context.Context, plan *planning.WeeklyPlan) error {
	snap := plan.Snapshot()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin plan create: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO weekly_plans (id, tenant_id, starting_date, week_start_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	_, err = tx.Exec(ctx, query, snap.ID, snap.TenantID, snap.StartingDate, snap.WeekStartDay)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &models.ConflictError{Msg: "a weekly plan already exists for this start date"}
		}
		return fmt.Errorf("failed to insert weekly plan: %w", err)
	}

	if err := insertDays(ctx, tx, snap); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Save replaces the persisted aggregate with the in-memory one, leftover
// flags and frozen dinner decisions included.
func (r *PlanRepository) Save(ctx context.Context, plan *planning.WeeklyPlan) error {
	snap := plan.Snapshot()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin plan save: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE weekly_plans SET updated_at = NOW() WHERE tenant_id = $1 AND id = $2`,
		snap.TenantID, snap.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to touch weekly plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &models.NotFoundError{Msg: "weekly plan not found"}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM plan_days WHERE plan_id = $1`, snap.ID); err != nil {
		return fmt.Errorf("failed to clear plan days: %w", err)
	}
	if err := insertDays(ctx, tx, snap); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// FindByID loads and rehydrates a plan.
func (r *PlanRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*planning.WeeklyPlan, error) {
	query := `
		SELECT id, tenant_id, starting_date, week_start_day
		FROM weekly_plans
		WHERE tenant_id = $1 AND id = $2
	`
	return r.loadPlan(ctx, query, tenantID, id)
}

// FindByTenantAndStartDate loads the plan covering the week that starts on
// the given date.
func (r *PlanRepository) FindByTenantAndStartDate(ctx context.Context, tenantID uuid.UUID, startingDate time.Time) (*planning.WeeklyPlan, error) {
	query := `
		SELECT id, tenant_id, starting_date, week_start_day
		FROM weekly_plans
		WHERE tenant_id = $1 AND starting_date = $2
	`
	return r.loadPlan(ctx, query, tenantID, startingDate)
}

// Delete removes a plan and its day rows.
func (r *PlanRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin plan delete: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM plan_days WHERE plan_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete plan days: %w", err)
	}
	result, err := tx.Exec(ctx, `DELETE FROM weekly_plans WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to delete weekly plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &models.NotFoundError{Msg: "weekly plan not found"}
	}
	return tx.Commit(ctx)
}

func (r *PlanRepository) loadPlan(ctx context.Context, query string, args ...interface{}) (*planning.WeeklyPlan, error) {
	var snap models.PlanSnapshot
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&snap.ID,
		&snap.TenantID,
		&snap.StartingDate,
		&snap.WeekStartDay,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.NotFoundError{Msg: "weekly plan not found"}
		}
		return nil, fmt.Errorf("failed to get weekly plan: %w", err)
	}

	days, assignments, err := r.loadDays(ctx, snap.ID)
	if err != nil {
		return nil, err
	}
	snap.Days = days
	snap.DinnerAssignments = assignments

	return planning.Rehydrate(snap)
}

func (r *PlanRepository) loadDays(ctx context.Context, planID uuid.UUID) ([7]models.DayPlan, map[string]bool, error) {
	var days [7]models.DayPlan
	assignments := make(map[string]bool)

	query := `
		SELECT date, lunch_meal_id, dinner_meal_id, is_leftover, dinner_makes_lunch
		FROM plan_days
		WHERE plan_id = $1
		ORDER BY date ASC
	`
	rows, err := r.db.Query(ctx, query, planID)
	if err != nil {
		return days, nil, fmt.Errorf("failed to query plan days: %w", err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(days) {
			return days, nil, fmt.Errorf("plan %s has more than 7 day rows", planID)
		}
		var day models.DayPlan
		var makesLunch *bool
		err := rows.Scan(&day.Date, &day.LunchMealID, &day.DinnerMealID, &day.IsLeftover, &makesLunch)
		if err != nil {
			return days, nil, fmt.Errorf("failed to parse plan day: %w", err)
		}
		if makesLunch != nil {
			assignments[day.Date.Format(models.DateLayout)] = *makesLunch
		}
		days[i] = day
		i++
	}
	if err := rows.Err(); err != nil {
		return days, nil, err
	}
	if i != len(days) {
		return days, nil, fmt.Errorf("plan %s has %d day rows, want 7", planID, i)
	}
	return days, assignments, nil
}

func insertDays(ctx context.Context, tx pgx.Tx, snap models.PlanSnapshot) error {
	query := `
		INSERT INTO plan_days (
			id, plan_id, date, long_day, short_day,
			lunch_meal_id, dinner_meal_id, is_leftover, dinner_makes_lunch
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, day := range snap.Days {
		// The frozen decision is stored on the dinner's own day row;
		// NULL means no dinner assignment was recorded for that date.
		var makesLunch *bool
		if v, ok := snap.DinnerAssignments[day.Date.Format(models.DateLayout)]; ok {
			makesLunch = &v
		}
		_, err := tx.Exec(ctx, query,
			uuid.New(), snap.ID, day.Date, day.LongDay, day.ShortDay,
			day.LunchMealID, day.DinnerMealID, day.IsLeftover, makesLunch,
		)
		if err != nil {
			return fmt.Errorf("failed to insert plan day %s: %w", day.Date.Format(models.DateLayout), err)
		}
	}
	return nil
}
