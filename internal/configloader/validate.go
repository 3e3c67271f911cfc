package configloader

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yaklabco/logsweep/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "target_name").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration for invalid values.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}

	if cfg == nil {
		return result
	}

	if cfg.TargetName != "" && !isIdentifier(cfg.TargetName) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "target_name",
			Value:   cfg.TargetName,
			Message: "must be a plain identifier (letters, digits, _, $; no dots)",
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("unsupported format %q (expected text or json)", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "must be zero (auto) or positive",
		})
	}

	switch cfg.Backups.Mode {
	case "", "sidecar", "none":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "backups.mode",
			Value:   cfg.Backups.Mode,
			Message: fmt.Sprintf("unsupported mode %q (expected sidecar or none)", cfg.Backups.Mode),
		})
	}

	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "extensions",
				Value:   ext,
				Message: "extension should start with a dot",
			})
		}
	}

	return result
}

// isIdentifier reports whether name is a valid script identifier. Member
// paths like "window.console" are rejected; only the bare object name is
// matched against call sites.
func isIdentifier(name string) bool {
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case unicode.IsLetter(r):
		case unicode.IsDigit(r):
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return name != ""
}
