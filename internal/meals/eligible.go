package meals

import (
	"context"
	"fmt"
	"time"

	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
	"github.com/google/uuid"
)

// MealCatalog is the meal store contract the services query. The filter is a
// boolean-AND constraint map; result ordering is catalog-defined.
type MealCatalog interface {
	FindByQualities(ctx context.Context, tenantID uuid.UUID, filter models.QualityFilter) ([]models.MealSummary, error)
}

// SettingsStore loads a tenant's weekly taste preferences. A missing tenant
// returns (nil, nil).
type SettingsStore interface {
	FindByTenantID(ctx context.Context, tenantID uuid.UUID) (*models.UserSettings, error)
}

// Request identifies the tenant, calendar date, and slot to find candidate
// meals for.
type Request struct {
	TenantID uuid.UUID
	Date     string
	MealType models.MealSlot
}

// EligibleMealsService narrows a tenant's meal catalog to the candidates
// matching a slot and the day's taste preferences.
type EligibleMealsService struct {
	catalog  MealCatalog
	settings SettingsStore
}

func NewEligibleMealsService(catalog MealCatalog, settings SettingsStore) *EligibleMealsService {
	return &EligibleMealsService{catalog: catalog, settings: settings}
}

// Execute builds the eligibility filter for the request and returns the
// catalog's result set unmodified. Preferences only narrow toward
// "must be true": an absent or false preference adds no constraint.
func (s *EligibleMealsService) Execute(ctx context.Context, req Request) ([]models.MealSummary, error) {
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, &models.InvalidInputError{Msg: "invalid date supplied"}
	}
	if !req.MealType.Valid() {
		return nil, &models.ValidationError{Msg: "unknown meal slot"}
	}

	settings, err := s.settings.FindByTenantID(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, &models.NotFoundError{Msg: "user settings not found"}
	}

	day := models.DayOfWeekFor(date)
	pref, ok := settings.PreferenceFor(day)
	if !ok {
		return nil, &models.NotFoundError{Msg: fmt.Sprintf("no preference configured for %s", day)}
	}

	return s.catalog.FindByQualities(ctx, req.TenantID, buildFilter(pref, req.MealType))
}

func buildFilter(pref models.DayPreference, mealType models.MealSlot) models.QualityFilter {
	filter := models.QualityFilter{"is_archived": false}
	if mealType == models.SlotLunch {
		filter["is_lunch"] = true
	} else {
		filter["is_dinner"] = true
	}
	addRequiredTrue(filter, "is_creamy", pref.Preferences.IsCreamy)
	addRequiredTrue(filter, "is_acidic", pref.Preferences.IsAcidic)
	addRequiredTrue(filter, "green_veg", pref.Preferences.GreenVeg)
	addRequiredTrue(filter, "is_easy_to_make", pref.Preferences.IsEasyToMake)
	addRequiredTrue(filter, "needs_prep", pref.Preferences.NeedsPrep)
	return filter
}

func addRequiredTrue(filter models.QualityFilter, column string, pref *bool) {
	if pref != nil && *pref {
		filter[column] = true
	}
}
