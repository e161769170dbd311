// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and the logger
//              can decide how loudly a failure is reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-14 v0.2.0: Severity mapping for the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as invalid user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a programming or configuration error that will
	// not go away on retry
	SeverityHigh

	// SeverityCritical indicates an error that makes the component unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeInvalidPattern, CodeInvalidConfig, CodeMissingConfig, CodeConfigError:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
