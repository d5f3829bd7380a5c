package tools

import (
	"strconv"
	"strings"

	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

// The planner passes every tool argument as one raw string that may encode
// up to two logical parameters joined by a comma ("<id>,30", "Sales,60",
// "<id>,09:15"). The helpers here perform the one-time translation into
// typed values so nothing past this boundary sees stringly-typed input.

// SplitComposite splits a raw tool argument on commas and trims each part.
func SplitComposite(input string) []string {
	parts := strings.Split(input, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParseIdentityAndDays parses "id" or "id,days". A malformed identity is a
// rejection carrying the offending value; a malformed day count silently
// falls back to defaultDays. That asymmetry is deliberate: callers depend on
// graceful degradation for counts but never for identities.
func ParseIdentityAndDays(input string, defaultDays int) (string, int, error) {
	parts := SplitComposite(input)

	id := parts[0]
	if !validator.IsValidObjectID(id) {
		return "", 0, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "invalid employee ID format: " + id,
		}}
	}

	days := defaultDays
	if len(parts) > 1 {
		if n, err := strconv.Atoi(parts[1]); err == nil && n > 0 {
			days = n
		}
	}

	return id, days, nil
}

// ParseIdentityAndTime parses "id" or "id,HH:MM". The time part is returned
// as-is (possibly empty); HH:MM validation belongs to the marking request.
func ParseIdentityAndTime(input string) (string, string, error) {
	parts := SplitComposite(input)

	id := parts[0]
	if !validator.IsValidObjectID(id) {
		return "", "", validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "invalid employee ID format: " + id,
		}}
	}

	punchIn := ""
	if len(parts) > 1 {
		punchIn = parts[1]
	}

	return id, punchIn, nil
}

// ParseNameAndDays parses "name" or "name,days" with the same silent
// day-count fallback as ParseIdentityAndDays.
func ParseNameAndDays(input string, defaultDays int) (string, int) {
	parts := SplitComposite(input)

	days := defaultDays
	if len(parts) > 1 {
		if n, err := strconv.Atoi(parts[1]); err == nil && n > 0 {
			days = n
		}
	}

	return parts[0], days
}

// ParseDays parses a bare day count, falling back to defaultDays.
func ParseDays(input string, defaultDays int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(input)); err == nil && n > 0 {
		return n
	}
	return defaultDays
}
