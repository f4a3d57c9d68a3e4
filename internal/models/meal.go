package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// QualityFlags is the set of boolean taste and preparation attributes attached
// to a meal. Values are compared and replaced wholesale, never mutated in
// place; every construction and update re-checks the creamy/acidic rule.
type QualityFlags struct {
	IsDinner     bool `json:"is_dinner" db:"is_dinner"`
	IsLunch      bool `json:"is_lunch" db:"is_lunch"`
	IsCreamy     bool `json:"is_creamy" db:"is_creamy"`
	IsAcidic     bool `json:"is_acidic" db:"is_acidic"`
	GreenVeg     bool `json:"green_veg" db:"green_veg"`
	MakesLunch   bool `json:"makes_lunch" db:"makes_lunch"`
	IsEasyToMake bool `json:"is_easy_to_make" db:"is_easy_to_make"`
	NeedsPrep    bool `json:"needs_prep" db:"needs_prep"`
}

// QualityFlagsPatch carries optional overrides for creating or updating
// quality flags. Nil fields are left at their default or current value.
type QualityFlagsPatch struct {
	IsDinner     *bool `json:"is_dinner,omitempty"`
	IsLunch      *bool `json:"is_lunch,omitempty"`
	IsCreamy     *bool `json:"is_creamy,omitempty"`
	IsAcidic     *bool `json:"is_acidic,omitempty"`
	GreenVeg     *bool `json:"green_veg,omitempty"`
	MakesLunch   *bool `json:"makes_lunch,omitempty"`
	IsEasyToMake *bool `json:"is_easy_to_make,omitempty"`
	NeedsPrep    *bool `json:"needs_prep,omitempty"`
}

// NewQualityFlags builds a flag set from a patch. IsDinner defaults to true,
// everything else to false.
func NewQualityFlags(patch QualityFlagsPatch) (QualityFlags, error) {
	flags := QualityFlags{IsDinner: true}
	flags.apply(patch)
	if err := flags.validate(); err != nil {
		return QualityFlags{}, err
	}
	return flags, nil
}

// Update merges a patch over the existing flags and returns the new value.
// The receiver is left untouched when validation fails.
func (q QualityFlags) Update(patch QualityFlagsPatch) (QualityFlags, error) {
	next := q
	next.apply(patch)
	if err := next.validate(); err != nil {
		return QualityFlags{}, err
	}
	return next, nil
}

func (q *QualityFlags) apply(patch QualityFlagsPatch) {
	if patch.IsDinner != nil {
		q.IsDinner = *patch.IsDinner
	}
	if patch.IsLunch != nil {
		q.IsLunch = *patch.IsLunch
	}
	if patch.IsCreamy != nil {
		q.IsCreamy = *patch.IsCreamy
	}
	if patch.IsAcidic != nil {
		q.IsAcidic = *patch.IsAcidic
	}
	if patch.GreenVeg != nil {
		q.GreenVeg = *patch.GreenVeg
	}
	if patch.MakesLunch != nil {
		q.MakesLunch = *patch.MakesLunch
	}
	if patch.IsEasyToMake != nil {
		q.IsEasyToMake = *patch.IsEasyToMake
	}
	if patch.NeedsPrep != nil {
		q.NeedsPrep = *patch.NeedsPrep
	}
}

func (q QualityFlags) validate() error {
	if q.IsCreamy && q.IsAcidic {
		return &ValidationError{Msg: "a meal cannot be both creamy and acidic"}
	}
	return nil
}

// Meal is a catalog entry scoped to one tenant.
type Meal struct {
	ID         uuid.UUID    `json:"id" db:"id"`
	TenantID   uuid.UUID    `json:"tenant_id" db:"tenant_id"`
	Name       string       `json:"name" db:"name"`
	Qualities  QualityFlags `json:"qualities"`
	IsArchived bool         `json:"is_archived" db:"is_archived"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" db:"updated_at"`
}

// MealSummary is the shape returned by catalog queries.
type MealSummary struct {
	ID        uuid.UUID    `json:"id"`
	MealName  string       `json:"meal_name"`
	Qualities QualityFlags `json:"qualities"`
}

// QualityFilter is a boolean-AND constraint map over meal columns. A key's
// presence means the column must equal its value; absent keys are
// unconstrained.
type QualityFilter map[string]bool

// Columns returns the constrained column names in a stable order, so the
// generated SQL is deterministic.
func (f QualityFilter) Columns() []string {
	cols := make([]string, 0, len(f))
	for col := range f {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
