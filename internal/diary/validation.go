package diary

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field limits.
const (
	MaxActivityLength = 200
	MaxNotesLength    = 2000
)

// Form field identifiers, as rendered by the form layer.
const (
	FieldActivity  = "activity"
	FieldCategory  = "category"
	FieldStartTime = "start-time"
	FieldEndTime   = "end-time"
	FieldNotes     = "notes"
)

// FieldIDs lists every form field identifier in schema order.
var FieldIDs = []string{FieldActivity, FieldCategory, FieldStartTime, FieldEndTime, FieldNotes}

// Fields holds candidate values from the entry form.
// A nil field was not supplied.
type Fields struct {
	Activity  *string `json:"activity,omitempty"`
	Category  *string `json:"category,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// FieldsFrom builds Fields from raw form values. Values are trimmed and
// empty values are treated as not supplied.
func FieldsFrom(activity, category, start, end, notes string) Fields {
	return Fields{
		Activity:  optional(activity),
		Category:  optional(category),
		StartTime: optional(start),
		EndTime:   optional(end),
		Notes:     optional(notes),
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// FieldError ties a validation failure to a form field.
type FieldError struct {
	FieldID string `json:"fieldId"`
	Message string `json:"message"`
}

// ValidationResult is the verdict for a set of form fields.
type ValidationResult struct {
	Errors []FieldError `json:"errors"`
}

// Valid reports whether no errors were found.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasError reports whether fieldID has at least one error.
func (r ValidationResult) HasError(fieldID string) bool {
	return len(r.FieldErrors(fieldID)) > 0
}

// FieldErrors returns the errors recorded for fieldID.
func (r ValidationResult) FieldErrors(fieldID string) []FieldError {
	var out []FieldError
	for _, e := range r.Errors {
		if e.FieldID == fieldID {
			out = append(out, e)
		}
	}
	return out
}

// Err returns nil for a valid result, or a *ValidationError otherwise.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}

// ValidationError wraps the field errors of a failed validation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fmt.Sprintf("%s: %s", fe.FieldID, fe.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidEntry, strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is match ErrInvalidEntry.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidEntry
}

// Validate checks form fields against the field rules and the temporal
// business rules. existing holds the entries already recorded on the same
// date; the entry with ID editingID is skipped so an edited entry never
// conflicts with itself. An empty editingID compares against every entry.
//
// Errors are ordered: field errors in schema order, then the end-after-start
// rule, then the first overlap found in existing.
func Validate(fields Fields, existing []*Entry, editingID string) ValidationResult {
	var errs []FieldError
	add := func(fieldID, msg string) {
		errs = append(errs, FieldError{FieldID: fieldID, Message: msg})
	}

	switch {
	case fields.Activity == nil || *fields.Activity == "":
		add(FieldActivity, "Activity is required")
	case utf8.RuneCountInString(*fields.Activity) > MaxActivityLength:
		add(FieldActivity, fmt.Sprintf("Activity must be at most %d characters", MaxActivityLength))
	}

	if fields.Category == nil || *fields.Category == "" {
		add(FieldCategory, "Category is required")
	}

	startOK := fields.StartTime != nil && ValidTimeFormat(*fields.StartTime)
	if !startOK {
		add(FieldStartTime, "Start time must be in HH:MM format")
	}
	endOK := fields.EndTime != nil && ValidTimeFormat(*fields.EndTime)
	if !endOK {
		add(FieldEndTime, "End time must be in HH:MM format")
	}

	if fields.Notes != nil && utf8.RuneCountInString(*fields.Notes) > MaxNotesLength {
		add(FieldNotes, fmt.Sprintf("Notes must be at most %d characters", MaxNotesLength))
	}

	if !startOK || !endOK {
		return ValidationResult{Errors: errs}
	}

	start, end := *fields.StartTime, *fields.EndTime
	if !IsBefore(start, end) {
		add(FieldEndTime, "End time must be after start time.")
		return ValidationResult{Errors: errs}
	}

	candidate := Interval{Start: start, End: end}
	if conflict := firstOverlap(candidate, existing, editingID); conflict != nil {
		add(FieldStartTime, fmt.Sprintf(
			"Time slot overlaps with \"%s\" (%s–%s). Please adjust the times.",
			conflict.Activity, conflict.StartTime, conflict.EndTime,
		))
	}

	return ValidationResult{Errors: errs}
}

// firstOverlap returns the first entry in existing order that overlaps
// candidate, skipping excludeID.
func firstOverlap(candidate Interval, existing []*Entry, excludeID string) *Entry {
	for _, e := range existing {
		if e == nil {
			continue
		}
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		if Overlaps(candidate, e.Interval()) {
			return e
		}
	}
	return nil
}
