package models

import (
	"errors"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func TestNewQualityFlagsDefaults(t *testing.T) {
	flags, err := NewQualityFlags(QualityFlagsPatch{})
	if err != nil {
		t.Fatalf("NewQualityFlags failed: %v", err)
	}
	if !flags.IsDinner {
		t.Error("expected IsDinner to default to true")
	}
	if flags.IsLunch || flags.IsCreamy || flags.IsAcidic || flags.GreenVeg ||
		flags.MakesLunch || flags.IsEasyToMake || flags.NeedsPrep {
		t.Errorf("expected all other flags to default to false, got %+v", flags)
	}
}

func TestNewQualityFlagsOverrides(t *testing.T) {
	flags, err := NewQualityFlags(QualityFlagsPatch{
		IsDinner:   boolPtr(false),
		IsLunch:    boolPtr(true),
		IsCreamy:   boolPtr(true),
		MakesLunch: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("NewQualityFlags failed: %v", err)
	}
	if flags.IsDinner {
		t.Error("expected IsDinner override to false")
	}
	if !flags.IsLunch || !flags.IsCreamy || !flags.MakesLunch {
		t.Errorf("expected overridden flags to be true, got %+v", flags)
	}
}

func TestNewQualityFlagsCreamyAcidicExclusive(t *testing.T) {
	_, err := NewQualityFlags(QualityFlagsPatch{
		IsCreamy: boolPtr(true),
		IsAcidic: boolPtr(true),
	})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// Creamy alone is fine.
	if _, err := NewQualityFlags(QualityFlagsPatch{IsCreamy: boolPtr(true)}); err != nil {
		t.Fatalf("creamy-only flags should be valid: %v", err)
	}
}

func TestQualityFlagsUpdateRevalidates(t *testing.T) {
	flags, err := NewQualityFlags(QualityFlagsPatch{IsCreamy: boolPtr(true)})
	if err != nil {
		t.Fatalf("NewQualityFlags failed: %v", err)
	}

	_, err = flags.Update(QualityFlagsPatch{IsAcidic: boolPtr(true)})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError on update, got %v", err)
	}

	// Original value is untouched after the failed update.
	if !flags.IsCreamy || flags.IsAcidic {
		t.Errorf("original flags changed after failed update: %+v", flags)
	}

	// Flipping creamy off first makes acidic legal.
	updated, err := flags.Update(QualityFlagsPatch{IsCreamy: boolPtr(false), IsAcidic: boolPtr(true)})
	if err != nil {
		t.Fatalf("expected valid update, got %v", err)
	}
	if updated.IsCreamy || !updated.IsAcidic {
		t.Errorf("unexpected merged flags: %+v", updated)
	}
}

func TestQualityFilterColumnsStableOrder(t *testing.T) {
	filter := QualityFilter{"is_lunch": true, "is_archived": false, "green_veg": true}
	cols := filter.Columns()
	want := []string{"green_veg", "is_archived", "is_lunch"}
	if len(cols) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(cols))
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("column %d: expected %s, got %s", i, want[i], cols[i])
		}
	}
}
