// Package errors provides the shared error constructors used by every
// stringkit package.
//
// Package: errors
// Title: Shared Error Constructors
// Description: Builds *mdwerror.Error values with a consistent message,
//              code and detail layout. Module code should use these helpers
//              instead of fmt.Errorf or errors.New so callers can inspect
//              failures by code and module.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-14 v0.2.0: Constructors for regexx, stringx and config modules
//
// Usage:
//   err := errors.NewErrorBuilder(errors.ModuleRegexx).
//     Operation("get_or_compile").
//     Code(string(mdwerror.CodeInvalidPattern)).
//     Detail("pattern", pattern).
//     Cause(syntaxErr).
//     Build()
//
//   if errors.IsModuleOperation(err, errors.ModuleRegexx, "get_or_compile") {
//     // ...
//   }
package errors
