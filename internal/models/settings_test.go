package models

import (
	"errors"
	"testing"
)

func fullWeekPreferences() []DayPreference {
	days := []DayOfWeek{"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"}
	prefs := make([]DayPreference, 0, 7)
	for _, d := range days {
		prefs = append(prefs, DayPreference{Day: d})
	}
	return prefs
}

func TestUserSettingsValidate(t *testing.T) {
	settings := &UserSettings{
		WeekStartDay:     WeekStartMonday,
		DailyPreferences: fullWeekPreferences(),
	}
	if err := settings.Validate(); err != nil {
		t.Fatalf("expected valid settings, got %v", err)
	}
}

func TestUserSettingsValidateRejectsShortWeek(t *testing.T) {
	settings := &UserSettings{
		WeekStartDay:     WeekStartMonday,
		DailyPreferences: fullWeekPreferences()[:6],
	}
	var validationErr *ValidationError
	if err := settings.Validate(); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for 6 entries, got %v", err)
	}
}

func TestUserSettingsValidateRejectsDuplicateDay(t *testing.T) {
	prefs := fullWeekPreferences()
	prefs[6].Day = "MONDAY"
	settings := &UserSettings{
		WeekStartDay:     WeekStartMonday,
		DailyPreferences: prefs,
	}
	var validationErr *ValidationError
	if err := settings.Validate(); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for duplicate day, got %v", err)
	}
}

func TestUserSettingsValidateRejectsUnknownDay(t *testing.T) {
	prefs := fullWeekPreferences()
	prefs[0].Day = "FUNDAY"
	settings := &UserSettings{
		WeekStartDay:     WeekStartMonday,
		DailyPreferences: prefs,
	}
	var validationErr *ValidationError
	if err := settings.Validate(); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for unknown day, got %v", err)
	}
}

func TestPreferenceFor(t *testing.T) {
	prefs := fullWeekPreferences()
	wantTrue := true
	prefs[3].Preferences.GreenVeg = &wantTrue

	settings := &UserSettings{WeekStartDay: WeekStartMonday, DailyPreferences: prefs}

	pref, ok := settings.PreferenceFor("WEDNESDAY")
	if !ok {
		t.Fatal("expected to find WEDNESDAY preference")
	}
	if pref.Preferences.GreenVeg == nil || !*pref.Preferences.GreenVeg {
		t.Error("expected GreenVeg preference to be true")
	}

	if _, ok := settings.PreferenceFor("FUNDAY"); ok {
		t.Error("expected lookup of unknown day to fail")
	}
}
