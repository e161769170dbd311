// File: case.go
// Title: Locale-Aware Case Mapping
// Description: Upper and lower case mapping through golang.org/x/text/cases
//              using a package-wide locale, plus case-insensitive equality.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-14 v0.2.0: Replaced naming-convention converters with locale
//                       case mapping

package stringx

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	mdwerrors "github.com/msto63/stringkit/foundation/core/errors"
)

var (
	localeMu sync.RWMutex
	locale   = language.Und
)

// Locale returns the language used by Upper, Lower and EqualFold
func Locale() language.Tag {
	localeMu.RLock()
	defer localeMu.RUnlock()
	return locale
}

// SetLocale sets the case mapping language from a BCP 47 tag such as
// "tr" or "de-CH". An empty tag resets it to language.Und.
func SetLocale(tag string) error {
	t, err := parseLocale(tag)
	if err != nil {
		return err
	}

	localeMu.Lock()
	locale = t
	localeMu.Unlock()
	return nil
}

func parseLocale(tag string) (language.Tag, error) {
	if tag == "" {
		return language.Und, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return language.Und, mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "set_locale", tag, "BCP 47 language tag")
	}
	return t, nil
}

// Upper maps s to upper case using the configured locale.
// A Caser keeps state between calls, so each call builds its own.
func Upper(s string) string {
	return cases.Upper(Locale()).String(s)
}

// Lower maps s to lower case using the configured locale
func Lower(s string) string {
	return cases.Lower(Locale()).String(s)
}

// EqualFold reports whether a and b are equal after mapping both to lower
// case
func EqualFold(a, b string) bool {
	return Lower(a) == Lower(b)
}
