package models

import (
	"testing"
	"time"
)

func TestDayLabelsForDate(t *testing.T) {
	tests := []struct {
		date      string
		wantLong  DayOfWeek
		wantShort ShortDay
	}{
		{"2025-01-05", "SUNDAY", "SUN"},
		{"2025-01-06", "MONDAY", "MON"},
		{"2025-01-07", "TUESDAY", "TUE"},
		{"2025-01-08", "WEDNESDAY", "WED"},
		{"2025-01-09", "THURSDAY", "THU"},
		{"2025-01-10", "FRIDAY", "FRI"},
		{"2025-01-11", "SATURDAY", "SAT"},
	}

	for _, tt := range tests {
		date, err := time.Parse(DateLayout, tt.date)
		if err != nil {
			t.Fatalf("bad test date %s: %v", tt.date, err)
		}
		if got := DayOfWeekFor(date); got != tt.wantLong {
			t.Errorf("%s: expected %s, got %s", tt.date, tt.wantLong, got)
		}
		if got := ShortDayFor(date); got != tt.wantShort {
			t.Errorf("%s: expected %s, got %s", tt.date, tt.wantShort, got)
		}
	}
}

func TestWeekStartDayWeekday(t *testing.T) {
	tests := []struct {
		start WeekStartDay
		want  time.Weekday
	}{
		{WeekStartMonday, time.Monday},
		{WeekStartSaturday, time.Saturday},
		{WeekStartSunday, time.Sunday},
	}
	for _, tt := range tests {
		if got := tt.start.Weekday(); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.start, tt.want, got)
		}
	}
}

func TestWeekStartDayValid(t *testing.T) {
	if !WeekStartMonday.Valid() {
		t.Error("MONDAY should be valid")
	}
	if WeekStartDay("TUESDAY").Valid() {
		t.Error("TUESDAY is not a supported week start")
	}
}

func TestMealSlotValid(t *testing.T) {
	if !SlotLunch.Valid() || !SlotDinner.Valid() {
		t.Error("lunch and dinner should be valid slots")
	}
	if MealSlot("brunch").Valid() {
		t.Error("brunch is not a valid slot")
	}
}
