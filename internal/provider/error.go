package provider

import "fmt"

// Error is the failure shape shared by both provider clients.
type Error struct {
	Provider string
	Code     string
	Status   int
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Provider != "" && e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Provider != "" {
		return fmt.Sprintf("%s: error", e.Provider)
	}
	return "error"
}

func (e *Error) Unwrap() error { return e.Cause }
