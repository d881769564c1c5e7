package config

import (
	"fmt"
	"strings"
)

// Error aggregates configuration validation problems so a bad file reports
// everything wrong with it at once.
type Error struct {
	Path   string
	Errors []string
}

func (e *Error) add(msg string) {
	e.Errors = append(e.Errors, msg)
}

func (e *Error) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}
	parts := []string{fmt.Sprintf("invalid config %s:", e.Path)}
	for _, err := range e.Errors {
		parts = append(parts, fmt.Sprintf("  - %s", err))
	}
	return strings.Join(parts, "\n")
}

// HasErrors returns true if there are any errors.
func (e *Error) HasErrors() bool {
	return len(e.Errors) > 0
}
