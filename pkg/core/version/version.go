// ============================================================================
// stringkit - String and pattern utilities
// ============================================================================
//
// Package:     version
// Description: Central version of the library
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Library is the stringkit release version
const Library = "0.2.0"

// String returns the version prefixed with "v"
func String() string {
	return "v" + Library
}
