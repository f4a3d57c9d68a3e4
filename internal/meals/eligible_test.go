package meals

import (
	"context"
	"errors"
	"testing"

	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
	"github.com/google/uuid"
)

type mockCatalog struct {
	lastFilter models.QualityFilter
	results    []models.MealSummary
	err        error
}

func (m *mockCatalog) FindByQualities(ctx context.Context, tenantID uuid.UUID, filter models.QualityFilter) ([]models.MealSummary, error) {
	m.lastFilter = filter
	return m.results, m.err
}

type mockSettings struct {
	settings *models.UserSettings
	err      error
}

func (m *mockSettings) FindByTenantID(ctx context.Context, tenantID uuid.UUID) (*models.UserSettings, error) {
	return m.settings, m.err
}

func weekSettings(prefs map[models.DayOfWeek]models.TastePreferences) *models.UserSettings {
	days := []models.DayOfWeek{"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"}
	settings := &models.UserSettings{
		ID:           uuid.New(),
		TenantID:     uuid.New(),
		WeekStartDay: models.WeekStartMonday,
	}
	for _, d := range days {
		settings.DailyPreferences = append(settings.DailyPreferences, models.DayPreference{
			Day:         d,
			Preferences: prefs[d],
		})
	}
	return settings
}

func boolPtr(b bool) *bool { return &b }

func TestEligibleMealsLunchFilter(t *testing.T) {
	catalog := &mockCatalog{}
	svc := NewEligibleMealsService(catalog, &mockSettings{settings: weekSettings(nil)})

	_, err := svc.Execute(context.Background(), Request{
		TenantID: uuid.New(),
		Date:     "2025-01-06",
		MealType: models.SlotLunch,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if v, ok := catalog.lastFilter["is_lunch"]; !ok || !v {
		t.Errorf("expected is_lunch:true in filter, got %v", catalog.lastFilter)
	}
	if _, ok := catalog.lastFilter["is_dinner"]; ok {
		t.Errorf("lunch filter must not constrain is_dinner, got %v", catalog.lastFilter)
	}
	if v, ok := catalog.lastFilter["is_archived"]; !ok || v {
		t.Errorf("expected is_archived:false in filter, got %v", catalog.lastFilter)
	}
}

func TestEligibleMealsDinnerFilterWithPreferences(t *testing.T) {
	catalog := &mockCatalog{}
	// 2025-01-06 is a Monday.
	settings := weekSettings(map[models.DayOfWeek]models.TastePreferences{
		"MONDAY": {
			GreenVeg:     boolPtr(true),
			IsEasyToMake: boolPtr(true),
			IsCreamy:     boolPtr(false), // explicit false adds no constraint
		},
	})
	svc := NewEligibleMealsService(catalog, &mockSettings{settings: settings})

	_, err := svc.Execute(context.Background(), Request{
		TenantID: uuid.New(),
		Date:     "2025-01-06",
		MealType: models.SlotDinner,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if v := catalog.lastFilter["is_dinner"]; !v {
		t.Errorf("expected is_dinner:true, got %v", catalog.lastFilter)
	}
	if v := catalog.lastFilter["green_veg"]; !v {
		t.Errorf("expected green_veg:true, got %v", catalog.lastFilter)
	}
	if v := catalog.lastFilter["is_easy_to_make"]; !v {
		t.Errorf("expected is_easy_to_make:true, got %v", catalog.lastFilter)
	}
	if _, ok := catalog.lastFilter["is_creamy"]; ok {
		t.Errorf("a false preference must not appear in the filter, got %v", catalog.lastFilter)
	}
	if _, ok := catalog.lastFilter["needs_prep"]; ok {
		t.Errorf("an absent preference must not appear in the filter, got %v", catalog.lastFilter)
	}
}

func TestEligibleMealsUsesRequestDateWeekday(t *testing.T) {
	catalog := &mockCatalog{}
	settings := weekSettings(map[models.DayOfWeek]models.TastePreferences{
		"SUNDAY": {NeedsPrep: boolPtr(true)},
		"MONDAY": {GreenVeg: boolPtr(true)},
	})
	svc := NewEligibleMealsService(catalog, &mockSettings{settings: settings})

	// 2025-01-05 is a Sunday; only Sunday's preference applies.
	_, err := svc.Execute(context.Background(), Request{
		TenantID: uuid.New(),
		Date:     "2025-01-05",
		MealType: models.SlotDinner,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if v := catalog.lastFilter["needs_prep"]; !v {
		t.Errorf("expected Sunday's needs_prep constraint, got %v", catalog.lastFilter)
	}
	if _, ok := catalog.lastFilter["green_veg"]; ok {
		t.Errorf("Monday's preference leaked into Sunday's filter: %v", catalog.lastFilter)
	}
}

func TestEligibleMealsInvalidDate(t *testing.T) {
	svc := NewEligibleMealsService(&mockCatalog{}, &mockSettings{settings: weekSettings(nil)})

	_, err := svc.Execute(context.Background(), Request{
		TenantID: uuid.New(),
		Date:     "invalid-date",
		MealType: models.SlotDinner,
	})
	var invalidErr *models.InvalidInputError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestEligibleMealsMissingSettings(t *testing.T) {
	svc := NewEligibleMealsService(&mockCatalog{}, &mockSettings{settings: nil})

	_, err := svc.Execute(context.Background(), Request{
		TenantID: uuid.New(),
		Date:     "2025-01-06",
		MealType: models.SlotDinner,
	})
	var notFoundErr *models.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestEligibleMealsUnknownSlot(t *testing.T) {
	svc := NewEligibleMealsService(&mockCatalog{}, &mockSettings{settings: weekSettings(nil)})

	_, err := svc.Execute(context.Background(), Request{
		TenantID: uuid.New(),
		Date:     "2025-01-06",
		MealType: models.MealSlot("brunch"),
	})
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
