package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TastePreferences is the per-day subset of quality flags a tenant can opt
// into. Nil means no preference; only an explicit true narrows the eligible
// meal set.
type TastePreferences struct {
	IsCreamy     *bool `json:"is_creamy,omitempty"`
	IsAcidic     *bool `json:"is_acidic,omitempty"`
	GreenVeg     *bool `json:"green_veg,omitempty"`
	IsEasyToMake *bool `json:"is_easy_to_make,omitempty"`
	NeedsPrep    *bool `json:"needs_prep,omitempty"`
}

// DayPreference pairs one weekday with its taste preferences.
type DayPreference struct {
	Day         DayOfWeek        `json:"day"`
	Preferences TastePreferences `json:"preferences"`
}

// UserSettings holds a tenant's weekly taste preferences: exactly one entry
// per weekday, plus the configured week start day.
type UserSettings struct {
	ID               uuid.UUID       `json:"id"`
	TenantID         uuid.UUID       `json:"tenant_id"`
	WeekStartDay     WeekStartDay    `json:"week_start_day"`
	DailyPreferences []DayPreference `json:"daily_preferences"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Validate checks the seven-entry invariant: one preference per distinct
// weekday, no duplicates, no omissions.
func (s *UserSettings) Validate() error {
	if !s.WeekStartDay.Valid() {
		return &ValidationError{Msg: fmt.Sprintf("unknown week start day %q", s.WeekStartDay)}
	}
	if len(s.DailyPreferences) != 7 {
		return &ValidationError{Msg: fmt.Sprintf("daily preferences must have exactly 7 entries, got %d", len(s.DailyPreferences))}
	}
	seen := make(map[DayOfWeek]bool, 7)
	for _, p := range s.DailyPreferences {
		if !ValidDayOfWeek(p.Day) {
			return &ValidationError{Msg: fmt.Sprintf("unknown day of week %q", p.Day)}
		}
		if seen[p.Day] {
			return &ValidationError{Msg: fmt.Sprintf("duplicate preference entry for %s", p.Day)}
		}
		seen[p.Day] = true
	}
	return nil
}

// PreferenceFor returns the entry for the given weekday.
func (s *UserSettings) PreferenceFor(day DayOfWeek) (DayPreference, bool) {
	for _, p := range s.DailyPreferences {
		if p.Day == day {
			return p, true
		}
	}
	return DayPreference{}, false
}
