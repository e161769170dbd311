// File: standards.go
// Title: Error Standards for stringkit
// Description: Standard error constructors and module identifiers shared by
//              the regexx, stringx and config packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-14 v0.2.0: Replaced foundation module set with regexx, stringx,
//                       config and cache

package errors

import (
	stderrors "errors"
	"fmt"

	mdwerror "github.com/msto63/stringkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleRegexx  = "regexx"
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleCache   = "cache"
)

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(string(mdwerror.CodeInvalidInput)).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// ValidationFailed creates a standardized validation error for a named field
func ValidationFailed(module, field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Messagef("%s: validation failed for field %s: %s", module, field, reason).
		Code(string(mdwerror.CodeValidationFailed)).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value out of range in %s.%s", module, operation).
		Code(string(mdwerror.CodeValueOutOfRange)).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Code(moduleCode(module, "OPERATION_FAILED")).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// InvalidPattern creates the error returned when the regex engine rejects
// pattern text. The engine error stays reachable through Unwrap.
func InvalidPattern(module, operation, pattern, engine string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid pattern %q", pattern).
		Code(string(mdwerror.CodeInvalidPattern)).
		Cause(cause).
		Detail("pattern", pattern).
		Detail("engine", engine).
		Build()
}

// ConfigInvalid creates a configuration validation error for a dotted key
func ConfigInvalid(key string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Message(fmt.Sprintf("invalid configuration value for %s: %s", key, reason)).
		Code(string(mdwerror.CodeInvalidConfig)).
		Detail("key", key).
		Detail("value", value).
		Build()
}

// ExtractDetails extracts all details from a structured error in err's chain
func ExtractDetails(err error) map[string]interface{} {
	var mdwErr *mdwerror.Error
	if stderrors.As(err, &mdwErr) {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
