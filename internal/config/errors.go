package config

import "fmt"

// Error reports a missing or invalid setting. It is returned before any
// network call is attempted.
type Error struct {
	// Variable is the environment variable or setting at fault.
	Variable string
	// Value is the offending value, empty when the setting is missing.
	Value  string
	Reason string
}

func (e *Error) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("configuration error: %s %q: %s", e.Variable, e.Value, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s %s", e.Variable, e.Reason)
}

func missing(variable string) *Error {
	return &Error{Variable: variable, Reason: "environment variable is required"}
}
