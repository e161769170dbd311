// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the string helpers of stringkit and
//              the cached and uncached pattern matching entry points.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-14 v0.3.0: Rewritten around the pattern cache

// Package stringx provides string helpers built on the stringkit pattern
// cache.
//
// Overview
//
// Most functions are small pure wrappers: emptiness and blank checks,
// nil-aware comparison, locale-aware case mapping, rune-indexed substrings
// and trimming. Optional text is passed as *string; OrEmpty turns a nil
// pointer into "".
//
// Pattern matching
//
// Match, Replace and Split compile their pattern through regexx.Default(),
// so a pattern used repeatedly is compiled once. MatchNoCache compiles on
// every call and never touches the cache. Both match functions use search
// semantics: a match anywhere in the text counts.
//
//	ok, err := stringx.Match(&input, `[0-9]+`)
//	if regexx.IsInvalidPattern(err) {
//	    // the pattern text is malformed
//	}
//
// Patterns use RE2 syntax. Replacement templates follow regexp.Expand, so
// "$1" names the first submatch.
//
// Configuration
//
// Configure applies a loaded config.Config: the [text] locale and a new
// default pattern cache built from [pattern_cache].
//
//	cfg, err := config.LoadFromEnv()
//	if err == nil {
//	    err = stringx.Configure(cfg)
//	}
//
// Thread safety
//
// All functions are safe for concurrent use. SetLocale and Configure change
// package-wide state and affect calls that start after they return.
package stringx
