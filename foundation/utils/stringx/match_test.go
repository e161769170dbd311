// File: match_test.go
// Title: Unit Tests for Pattern Matching Entry Points
// Description: Tests for Match, MatchNoCache, Replace, Split and Configure
//              against an isolated default pattern cache.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Configure leaves state unchanged on failure, Split edge cases

package stringx

import (
	"reflect"
	"testing"

	mdwlog "github.com/msto63/stringkit/foundation/core/log"
	"github.com/msto63/stringkit/foundation/utils/regexx"
	"github.com/msto63/stringkit/pkg/core/config"
)

// isolateDefault installs a fresh default pattern cache for the test and
// restores the previous one afterwards
func isolateDefault(t *testing.T) *regexx.Cache {
	t.Helper()

	prev := regexx.Default()
	c, err := regexx.New(regexx.WithLogger(mdwlog.Discard()), regexx.WithCapacity(16))
	if err != nil {
		t.Fatalf("regexx.New() error = %v", err)
	}
	regexx.SetDefault(c)
	t.Cleanup(func() { regexx.SetDefault(prev) })
	return c
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		text    *string
		pattern string
		want    bool
		wantErr bool
	}{
		{"digits found", strPtr("ABC123"), `[0-9]+`, true, false},
		{"digits absent", strPtr("ABC"), `[0-9]+`, false, false},
		{"nil text", nil, `^$`, true, false},
		{"nil text needs char", nil, `.`, false, false},
		{"search not full match", strPtr("xxhelloxx"), `hello`, true, false},
		{"anchored", strPtr("xxhello"), `^hello`, false, false},
		{"invalid", strPtr("x"), `(`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateDefault(t)

			got, err := Match(tt.text, tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Match() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !regexx.IsInvalidPattern(err) {
				t.Errorf("Match() error = %v; want an invalid pattern error", err)
			}
			if got != tt.want {
				t.Errorf("Match() = %v; want %v", got, tt.want)
			}

			uncached, uErr := MatchNoCache(tt.text, tt.pattern)
			if (uErr != nil) != tt.wantErr {
				t.Fatalf("MatchNoCache() error = %v, wantErr %v", uErr, tt.wantErr)
			}
			if uncached != got {
				t.Errorf("MatchNoCache() = %v; Match() = %v", uncached, got)
			}
		})
	}
}

func TestMatchUsesDefaultCache(t *testing.T) {
	c := isolateDefault(t)

	for i := 0; i < 5; i++ {
		if _, err := Match(strPtr("a1"), `\d`); err != nil {
			t.Fatalf("Match() error = %v", err)
		}
	}
	if _, err := MatchNoCache(strPtr("a1"), `[a-z]`); err != nil {
		t.Fatalf("MatchNoCache() error = %v", err)
	}

	stats := c.Stats()
	if stats.Size != 1 || stats.Compiles != 1 || stats.Hits != 4 {
		t.Errorf("Stats() = %+v; want one compiled entry and four hits", stats)
	}
	if stats.UncachedCompiles != 1 {
		t.Errorf("UncachedCompiles = %d; want 1", stats.UncachedCompiles)
	}
	if c.Contains(`[a-z]`) {
		t.Error("MatchNoCache() must not store its pattern")
	}
}

func TestReplace(t *testing.T) {
	isolateDefault(t)

	tests := []struct {
		name    string
		input   string
		pattern string
		repl    string
		want    string
	}{
		{"digits", "a1b22c333", `[0-9]+`, "#", "a#b#c#"},
		{"no match", "abc", `[0-9]+`, "#", "abc"},
		{"submatch", "john smith", `(\w+) (\w+)`, "$2 $1", "smith john"},
		{"braced submatch", "ab", `(a)`, "${1}x", "axb"},
		{"empty input", "", `x`, "y", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Replace(tt.input, tt.pattern, tt.repl)
			if err != nil {
				t.Fatalf("Replace() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Replace(%q, %q, %q) = %q; want %q", tt.input, tt.pattern, tt.repl, got, tt.want)
			}
		})
	}

	if _, err := Replace("x", `[`, ""); !regexx.IsInvalidPattern(err) {
		t.Errorf("Replace() with invalid pattern error = %v", err)
	}
}

func TestSplit(t *testing.T) {
	isolateDefault(t)

	tests := []struct {
		name    string
		input   string
		pattern string
		want    []string
	}{
		{"comma", "a, b ,c", `,`, []string{"a", "b", "c"}},
		{"whitespace runs", "one  two\tthree", `\s+`, []string{"one", "two", "three"}},
		{"empty tokens kept", "a,,b,", `,`, []string{"a", "", "b", ""}},
		{"no match", " solo ", `,`, []string{"solo"}},
		{"empty input", "", `,`, []string{""}},
		{"empty pattern", "abc", ``, []string{"a", "b", "c"}},
		{"optional separator", "a b", ` *`, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input, tt.pattern)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q, %q) = %q; want %q", tt.input, tt.pattern, got, tt.want)
			}
		})
	}

	if _, err := Split("x", `(`); !regexx.IsInvalidPattern(err) {
		t.Errorf("Split() with invalid pattern error = %v", err)
	}
}

func TestConfigure(t *testing.T) {
	isolateDefault(t)
	resetLocale(t)

	cfg := config.Default()
	cfg.General.LogLevel = "off"
	cfg.PatternCache.Capacity = 7
	cfg.PatternCache.Engine = config.EngineCoregex
	cfg.Text.Locale = "tr"

	if err := Configure(cfg); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	c := regexx.Default()
	if got := c.Stats().Capacity; got != 7 {
		t.Errorf("Capacity = %d; want 7", got)
	}
	if got := c.Compiler().Name(); got != config.EngineCoregex {
		t.Errorf("engine = %q; want %q", got, config.EngineCoregex)
	}
	if got := Upper("i"); got != "İ" {
		t.Errorf("Upper(i) after Configure = %q; want İ", got)
	}

	ok, err := Match(strPtr("ABC123"), `[0-9]+`)
	if err != nil || !ok {
		t.Errorf("Match() = %v, %v; want true", ok, err)
	}
}

func TestConfigureInvalidLocale(t *testing.T) {
	before := isolateDefault(t)
	resetLocale(t)

	cfg := config.Default()
	cfg.Text.Locale = "not a tag!"

	if err := Configure(cfg); err == nil {
		t.Fatal("Configure() should fail on a malformed locale")
	}
	if regexx.Default() != before {
		t.Error("Configure() replaced the default cache despite failing")
	}
}

func TestConfigureInvalidEngineKeepsLocale(t *testing.T) {
	before := isolateDefault(t)
	resetLocale(t)

	cfg := config.Default()
	cfg.PatternCache.Engine = "pcre"
	cfg.Text.Locale = "tr"

	if err := Configure(cfg); err == nil {
		t.Fatal("Configure() should fail on an unknown engine")
	}
	if regexx.Default() != before {
		t.Error("Configure() replaced the default cache despite failing")
	}
	if got := Locale().String(); got != "und" {
		t.Errorf("Locale() = %q after a failed Configure; want und", got)
	}
}
