package models

import "time"

// DateLayout is the wire format for calendar dates across the API.
const DateLayout = "2006-01-02"

// WeekStartDay is the configured first day of a tenant's planning week.
type WeekStartDay string

const (
	WeekStartMonday   WeekStartDay = "MONDAY"
	WeekStartSaturday WeekStartDay = "SATURDAY"
	WeekStartSunday   WeekStartDay = "SUNDAY"
)

// Valid reports whether the value is one of the supported week starts.
func (w WeekStartDay) Valid() bool {
	switch w {
	case WeekStartMonday, WeekStartSaturday, WeekStartSunday:
		return true
	}
	return false
}

// Weekday returns the calendar weekday a plan with this setting must start on.
func (w WeekStartDay) Weekday() time.Weekday {
	switch w {
	case WeekStartSaturday:
		return time.Saturday
	case WeekStartSunday:
		return time.Sunday
	default:
		return time.Monday
	}
}

// DayOfWeek is the full weekday label used in plans and preferences.
type DayOfWeek string

// ShortDay is the abbreviated weekday label shown alongside DayOfWeek.
type ShortDay string

// Index tables are Sunday-based (0 = Sunday), matching time.Weekday.
var longDays = [7]DayOfWeek{
	"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY",
}

var shortDays = [7]ShortDay{
	"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT",
}

// DayOfWeekFor derives the full weekday label for a calendar date.
func DayOfWeekFor(t time.Time) DayOfWeek {
	return longDays[int(t.Weekday())]
}

// ShortDayFor derives the abbreviated weekday label for a calendar date.
func ShortDayFor(t time.Time) ShortDay {
	return shortDays[int(t.Weekday())]
}

// ValidDayOfWeek reports whether d is one of the seven weekday labels.
func ValidDayOfWeek(d DayOfWeek) bool {
	for _, day := range longDays {
		if day == d {
			return true
		}
	}
	return false
}

// MealSlot identifies which of the two daily slots an operation targets.
type MealSlot string

const (
	SlotLunch  MealSlot = "lunch"
	SlotDinner MealSlot = "dinner"
)

// Valid reports whether the slot is lunch or dinner.
func (s MealSlot) Valid() bool {
	return s == SlotLunch || s == SlotDinner
}
