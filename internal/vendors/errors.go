package vendors

import (
	"errors"
	"sort"
	"strings"

	"github.com/vendordesk/vendordesk/internal/platform/httpx"
)

var (
	// ErrNotFound covers both a missing vendor and one owned by someone else.
	ErrNotFound = httpx.NewError(httpx.ErrNotFound, "Vendor not found")
	// ErrMissingID is returned when an operation is called without a vendor id.
	ErrMissingID = httpx.NewError(httpx.ErrValidation, "Vendor id is required")
	// ErrNoChanges is returned by Update when no field is present.
	ErrNoChanges = httpx.NewError(httpx.ErrValidation, "At least one field is required to update")
	// ErrNoOwner guards service calls made without an authenticated user.
	ErrNoOwner = httpx.NewError(httpx.ErrUnauthorized, "Unauthorized")
)

// ValidationError lists the offending fields, keyed by their JSON name.
type ValidationError struct {
	Fields  map[string]string
	summary string
}

func newValidationError(summary string, fields map[string]string) *ValidationError {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return &ValidationError{Fields: fields, summary: summary + ": " + strings.Join(names, ", ")}
}

func (e *ValidationError) Error() string { return e.summary }

func (e *ValidationError) Unwrap() error { return httpx.ErrValidation }

// FieldErrors extracts per-field messages from err, nil when err is not a
// ValidationError.
func FieldErrors(err error) map[string]string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}
