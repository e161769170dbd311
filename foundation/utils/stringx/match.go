// File: match.go
// Title: Pattern Matching Entry Points
// Description: Search, replace and split by regular expression through the
//              process-wide pattern cache, plus the uncached match used when
//              a pattern is known to be used only once.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Configure changes nothing on failure

package stringx

import (
	"strings"

	"github.com/msto63/stringkit/foundation/utils/regexx"
	"github.com/msto63/stringkit/pkg/core/config"
)

// Match reports whether text contains a match of pattern. The compiled
// pattern is taken from, or added to, the default pattern cache. A nil text
// is matched as the empty string.
func Match(text *string, pattern string) (bool, error) {
	return regexx.Default().Match(text, pattern)
}

// MatchNoCache is Match without the cache: pattern is compiled on every
// call with the default cache's engine and never stored
func MatchNoCache(text *string, pattern string) (bool, error) {
	return regexx.Default().MatchUncached(text, pattern)
}

// Replace replaces every match of pattern in s with repl. Inside repl, $1
// or ${name} refer to submatches; use ${1}x when a digit or letter follows.
func Replace(s, pattern, repl string) (string, error) {
	m, err := regexx.Default().GetOrCompile(pattern)
	if err != nil {
		return "", err
	}
	return m.ReplaceAllString(s, repl), nil
}

// Split cuts s around every match of pattern and trims surrounding
// whitespace from each token. Empty tokens between matches are kept, but
// an empty match at the start or end of s adds no token, so an empty
// pattern splits "abc" into "a", "b" and "c" (regexp.Regexp.Split).
func Split(s, pattern string) ([]string, error) {
	m, err := regexx.Default().GetOrCompile(pattern)
	if err != nil {
		return nil, err
	}

	tokens := m.Split(s, -1)
	for i, token := range tokens {
		tokens[i] = strings.TrimSpace(token)
	}
	return tokens, nil
}

// Configure applies cfg to the package: the case mapping locale from [text]
// and a new default pattern cache from [pattern_cache]. A nil cfg applies
// the defaults. On error neither the locale nor the default cache change.
func Configure(cfg *config.Config) error {
	if cfg == nil {
		cfg = config.Default()
	}

	tag, err := parseLocale(cfg.Text.Locale)
	if err != nil {
		return err
	}
	if err := regexx.ConfigureDefault(cfg); err != nil {
		return err
	}

	localeMu.Lock()
	locale = tag
	localeMu.Unlock()
	return nil
}
