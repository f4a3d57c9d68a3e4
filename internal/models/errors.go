package models

// Error taxonomy for the planning core. All of these are caller input errors:
// synchronous, non-retryable, and safe to return verbatim in API responses.

// ValidationError reports a rejected field combination or malformed value.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// AlignmentError reports a plan start date that does not fall on the
// configured week start day.
type AlignmentError struct {
	Msg string
}

func (e *AlignmentError) Error() string { return e.Msg }

// NotFoundError reports a missing plan, day, meal, or preference set.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// InvalidInputError reports unparseable request input, such as a bad date.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string { return e.Msg }

// ConflictError reports a uniqueness violation surfaced by the store, such as
// a second weekly plan for the same tenant and start date.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }
