package menu

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when an item id does not exist in the store.
var ErrNotFound = errors.New("menu item not found")

// ValidationError carries the per-field error map built while validating an
// input. It blocks persistence; the operator corrects the fields and retries.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// UniquenessViolation means another non-deleted item already carries the
// same (name, category) pair. Surfaced on both fields, like the per-field
// validation errors.
type UniquenessViolation struct {
	Name     string
	Category string
}

func (e *UniquenessViolation) Error() string {
	return fmt.Sprintf("menu item %q already exists in category %q", e.Name, e.Category)
}

// FieldErrors returns the two-field error map the presentation layer shows.
func (e *UniquenessViolation) FieldErrors() map[string]string {
	return map[string]string{
		"name":     "Name already exists",
		"category": "Category already exists",
	}
}

// QueryFailure wraps a store read error during listing. The accumulated
// collection is left untouched when one occurs.
type QueryFailure struct {
	Cause error
}

func (e *QueryFailure) Error() string { return "menu query failed: " + e.Cause.Error() }
func (e *QueryFailure) Unwrap() error { return e.Cause }

// PersistenceFailure wraps a store read/write error during the mutation
// workflow. The operation is abandoned; entered values are preserved by the
// caller and the same action may be retried.
type PersistenceFailure struct {
	Op    string
	Cause error
}

func (e *PersistenceFailure) Error() string {
	return fmt.Sprintf("menu %s failed: %v", e.Op, e.Cause)
}

func (e *PersistenceFailure) Unwrap() error { return e.Cause }
