package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository stores per-tenant weekly taste preferences. The seven
// daily entries are kept as a JSONB document on the settings row.
type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// FindByTenantID returns the tenant's settings, or (nil, nil) when none have
// been saved yet.
func (r *SettingsRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID) (*models.UserSettings, error) {
	query := `
		SELECT id, tenant_id, week_start_day, daily_preferences, created_at, updated_at
		FROM user_settings
		WHERE tenant_id = $1
	`

	var settings models.UserSettings
	var prefsJSON []byte
	err := r.db.QueryRow(ctx, query, tenantID).Scan(
		&settings.ID,
		&settings.TenantID,
		&settings.WeekStartDay,
		&prefsJSON,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}

	if err := json.Unmarshal(prefsJSON, &settings.DailyPreferences); err != nil {
		return nil, fmt.Errorf("failed to parse daily preferences: %w", err)
	}
	return &settings, nil
}

// Upsert validates and saves the full settings document for a tenant.
func (r *SettingsRepository) Upsert(ctx context.Context, settings *models.UserSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	prefsJSON, err := json.Marshal(settings.DailyPreferences)
	if err != nil {
		return fmt.Errorf("failed to encode daily preferences: %w", err)
	}

	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}

	query := `
		INSERT INTO user_settings (id, tenant_id, week_start_day, daily_preferences, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (tenant_id) DO UPDATE
		SET week_start_day = EXCLUDED.week_start_day,
			daily_preferences = EXCLUDED.daily_preferences,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query,
		settings.ID, settings.TenantID, settings.WeekStartDay, prefsJSON,
	).Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save user settings: %w", err)
	}
	return nil
}
