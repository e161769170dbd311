// Package regexx provides a cache of compiled regular expressions.
//
// Package: regexx
// Title: Compiled Pattern Cache
// Description: Maps pattern text to compiled matchers so patterns reused
//              across calls are compiled once. The cache is bounded with
//              least-recently-used eviction and an optional time to live.
//              Concurrent first lookups of a pattern share one compile.
//              Two engines are available: the standard library regexp
//              package and coregex. Both use RE2 syntax.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Matching uses search semantics: a match anywhere in the text counts.
// Anchors such as ^ and $ keep their usual meaning within that search.
//
// Invalid pattern text is reported as an *mdwerror.Error with code
// INVALID_PATTERN whose cause is the engine's syntax error. Failed
// compiles are never stored, so every call with the same invalid pattern
// fails again.
//
// Usage:
//   ok, err := regexx.Default().MatchString("ABC123", `[0-9]+`)
//
//   cache, err := regexx.New(
//     regexx.WithCapacity(256),
//     regexx.WithTTL(10*time.Minute),
//     regexx.WithCompiler(regexx.CoregexCompiler{}),
//     regexx.WithMetrics(prometheus.DefaultRegisterer),
//   )
//
//   // One-off patterns that should not occupy cache space
//   ok, err = cache.MatchUncached(&text, userPattern)
package regexx
