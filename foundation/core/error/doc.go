// Package error provides structured error handling for stringkit.
//
// Package: error
// Title: Structured Error Type
// Description: This package implements an error type that carries a code,
//              a severity, free-form details and a captured stack trace. It
//              stays compatible with the standard error interface, so
//              errors.Is and errors.As work through wrapped chains.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Reduced code set to the string and pattern domain,
//                       code lookup now walks wrapped chains
//
// Usage:
//   import mdwerror "github.com/msto63/stringkit/foundation/core/error"
//
//   err := mdwerror.New("pattern failed to compile").
//     WithCode(mdwerror.CodeInvalidPattern).
//     WithDetail("pattern", "(")
//
//   wrapped := fmt.Errorf("loading rules: %w", err)
//   if mdwerror.HasCode(wrapped, mdwerror.CodeInvalidPattern) {
//     // reject the rule set
//   }
package error
