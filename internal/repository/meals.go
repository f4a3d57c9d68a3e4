package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MealRepository stores the tenant meal catalog.
type MealRepository struct {
	db *pgxpool.Pool
}

func NewMealRepository(db *pgxpool.Pool) *MealRepository {
	return &MealRepository{db: db}
}

const mealColumns = `
	id, tenant_id, name, is_dinner, is_lunch, is_creamy, is_acidic,
	green_veg, makes_lunch, is_easy_to_make, needs_prep, is_archived,
	created_at, updated_at
`

// CreateMeal inserts a new catalog entry with validated quality flags.
func (r *MealRepository) CreateMeal(ctx context.Context, tenantID uuid.UUID, name string, flags models.QualityFlags) (*models.Meal, error) {
	query := `
		INSERT INTO meals (
			id, tenant_id, name, is_dinner, is_lunch, is_creamy, is_acidic,
			green_veg, makes_lunch, is_easy_to_make, needs_prep, is_archived,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, false, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	meal := models.Meal{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      name,
		Qualities: flags,
	}
	err := r.db.QueryRow(ctx, query,
		meal.ID, tenantID, name,
		flags.IsDinner, flags.IsLunch, flags.IsCreamy, flags.IsAcidic,
		flags.GreenVeg, flags.MakesLunch, flags.IsEasyToMake, flags.NeedsPrep,
	).Scan(&meal.CreatedAt, &meal.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}

	return &meal, nil
}

// GetMeal retrieves a single catalog entry.
func (r *MealRepository) GetMeal(ctx context.Context, tenantID, id uuid.UUID) (*models.Meal, error) {
	query := `SELECT ` + mealColumns + ` FROM meals WHERE tenant_id = $1 AND id = $2`

	meal, err := scanMeal(r.db.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.NotFoundError{Msg: "meal not found"}
		}
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	return meal, nil
}

// ListMeals returns the tenant's catalog, optionally including archived
// entries.
func (r *MealRepository) ListMeals(ctx context.Context, tenantID uuid.UUID, includeArchived bool) ([]models.Meal, error) {
	query := `SELECT ` + mealColumns + ` FROM meals WHERE tenant_id = $1`
	if !includeArchived {
		query += ` AND is_archived = false`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	defer rows.Close()

	meals := []models.Meal{}
	for rows.Next() {
		meal, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to parse meal row: %w", err)
		}
		meals = append(meals, *meal)
	}
	return meals, rows.Err()
}

// UpdateQualities replaces a meal's quality flags wholesale.
func (r *MealRepository) UpdateQualities(ctx context.Context, tenantID, id uuid.UUID, flags models.QualityFlags) error {
	query := `
		UPDATE meals
		SET is_dinner = $1, is_lunch = $2, is_creamy = $3, is_acidic = $4,
			green_veg = $5, makes_lunch = $6, is_easy_to_make = $7, needs_prep = $8,
			updated_at = NOW()
		WHERE tenant_id = $9 AND id = $10
	`

	result, err := r.db.Exec(ctx, query,
		flags.IsDinner, flags.IsLunch, flags.IsCreamy, flags.IsAcidic,
		flags.GreenVeg, flags.MakesLunch, flags.IsEasyToMake, flags.NeedsPrep,
		tenantID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update meal qualities: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &models.NotFoundError{Msg: "meal not found"}
	}
	return nil
}

// ArchiveMeal soft-removes a meal from eligibility queries.
func (r *MealRepository) ArchiveMeal(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `UPDATE meals SET is_archived = true, updated_at = NOW() WHERE tenant_id = $1 AND id = $2`

	result, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to archive meal: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &models.NotFoundError{Msg: "meal not found"}
	}
	return nil
}

// FindByQualities evaluates a boolean-AND constraint map against the catalog.
// The filter keys are column names produced by the eligibility service; each
// becomes an equality clause with its own parameter index.
func (r *MealRepository) FindByQualities(ctx context.Context, tenantID uuid.UUID, filter models.QualityFilter) ([]models.MealSummary, error) {
	query := `
		SELECT id, name, is_dinner, is_lunch, is_creamy, is_acidic,
			green_veg, makes_lunch, is_easy_to_make, needs_prep
		FROM meals
		WHERE tenant_id = $1
	`
	args := []interface{}{tenantID}
	argIndex := 2

	for _, col := range filter.Columns() {
		query += fmt.Sprintf(" AND %s = $%d", col, argIndex)
		args = append(args, filter[col])
		argIndex++
	}
	query += " ORDER BY name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query meals by qualities: %w", err)
	}
	defer rows.Close()

	summaries := []models.MealSummary{}
	for rows.Next() {
		var s models.MealSummary
		err := rows.Scan(
			&s.ID,
			&s.MealName,
			&s.Qualities.IsDinner,
			&s.Qualities.IsLunch,
			&s.Qualities.IsCreamy,
			&s.Qualities.IsAcidic,
			&s.Qualities.GreenVeg,
			&s.Qualities.MakesLunch,
			&s.Qualities.IsEasyToMake,
			&s.Qualities.NeedsPrep,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse meal row: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func scanMeal(row pgx.Row) (*models.Meal, error) {
	var meal models.Meal
	err := row.Scan(
		&meal.ID,
		&meal.TenantID,
		&meal.Name,
		&meal.Qualities.IsDinner,
		&meal.Qualities.IsLunch,
		&meal.Qualities.IsCreamy,
		&meal.Qualities.IsAcidic,
		&meal.Qualities.GreenVeg,
		&meal.Qualities.MakesLunch,
		&meal.Qualities.IsEasyToMake,
		&meal.Qualities.NeedsPrep,
		&meal.IsArchived,
		&meal.CreatedAt,
		&meal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &meal, nil
}
