package domain

import "strings"

// FieldFailure is a single field-level failure reported by a schema check.
// Path is the location of the field within the input, outermost first.
type FieldFailure struct {
	Path     []string
	Message  string
	Received any
}

// FromFailures aggregates every failure from one validation pass into a
// single Validation error. Details map the dotted field path to its message
// and the received value.
//
// When the same path is reported more than once, the first failure wins;
// later duplicates are dropped so the result is deterministic.
func FromFailures(failures []FieldFailure) *Error {
	details := make(map[string]any, len(failures))
	for _, f := range failures {
		path := strings.Join(f.Path, ".")
		if path == "" {
			path = "body"
		}
		if _, seen := details[path]; seen {
			continue
		}
		details[path] = map[string]any{
			"message":  f.Message,
			"received": f.Received,
		}
	}
	return NewValidation("Validation failed", details)
}
