// File: stringx.go
// Title: Core String Utility Functions
// Description: Emptiness checks, comparison, formatting, substring and
//              whitespace helpers. Optional text is passed as *string and a
//              nil pointer is treated as the empty string.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-14 v0.2.0: Reduced to the wrapper set used by stringkit, added
//                       nil-aware comparison, Cut and Strip

package stringx

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// OrEmpty returns the text behind s, or "" when s is nil
func OrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Len returns the number of runes in s
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// IsEmpty reports whether s has no characters
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty is the negation of IsEmpty
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsBlank reports whether s is empty or contains only whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank is the negation of IsBlank
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Equal reports whether a and b hold the same text. A nil b compares as
// the empty string, but a nil a is never equal to anything.
func Equal(a, b *string) bool {
	return a != nil && *a == OrEmpty(b)
}

// NotEqual is the negation of Equal
func NotEqual(a, b *string) bool {
	return !Equal(a, b)
}

// Format formats according to a fmt verb string
func Format(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

// Cut returns the runes of s in [start, end). Bounds are clamped to the
// string; an empty range yields "".
func Cut(s string, start, end int) string {
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// Strip removes leading and trailing characters up to and including
// U+0020, which covers ASCII control characters and the space
func Strip(s string) string {
	return strings.TrimFunc(s, isControlOrSpace)
}

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// StripLineBreaks strips s and then removes every carriage return and
// line feed left inside it
func StripLineBreaks(s string) string {
	return lineBreaks.Replace(Strip(s))
}

func isControlOrSpace(r rune) bool {
	return r <= ' '
}
