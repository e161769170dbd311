// File: case_test.go
// Title: Unit Tests for Case Mapping
// Description: Tests for Upper, Lower, EqualFold and the package locale.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-14 v0.2.0: Locale-aware case mapping tests

package stringx

import (
	"testing"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/stringkit/foundation/core/error"
)

func resetLocale(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		if err := SetLocale(""); err != nil {
			t.Fatalf("SetLocale reset: %v", err)
		}
	})
}

func TestUpperLower(t *testing.T) {
	tests := []struct {
		input string
		upper string
		lower string
	}{
		{"hello", "HELLO", "hello"},
		{"Hello World", "HELLO WORLD", "hello world"},
		{"straße", "STRASSE", "straße"},
		{"ÄÖÜ", "ÄÖÜ", "äöü"},
		{"", "", ""},
		{"123-abc", "123-ABC", "123-abc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Upper(tt.input); got != tt.upper {
				t.Errorf("Upper(%q) = %q; want %q", tt.input, got, tt.upper)
			}
			if got := Lower(tt.input); got != tt.lower {
				t.Errorf("Lower(%q) = %q; want %q", tt.input, got, tt.lower)
			}
		})
	}
}

func TestSetLocale(t *testing.T) {
	resetLocale(t)

	if Locale() != language.Und {
		t.Fatalf("default Locale() = %v; want und", Locale())
	}

	if err := SetLocale("tr"); err != nil {
		t.Fatalf("SetLocale(tr) error = %v", err)
	}
	if got := Locale().String(); got != "tr" {
		t.Errorf("Locale() = %v; want tr", got)
	}
	if got := Upper("i"); got != "İ" {
		t.Errorf("Upper(i) with tr = %q; want İ", got)
	}

	if err := SetLocale(""); err != nil {
		t.Fatalf("SetLocale(\"\") error = %v", err)
	}
	if got := Upper("i"); got != "I" {
		t.Errorf("Upper(i) with und = %q; want I", got)
	}
}

func TestSetLocaleInvalid(t *testing.T) {
	resetLocale(t)

	err := SetLocale("not a tag!")
	if err == nil {
		t.Fatal("SetLocale() should reject a malformed tag")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("code = %v; want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidInput)
	}
	if Locale() != language.Und {
		t.Errorf("Locale() changed to %v after a failed SetLocale", Locale())
	}
}

func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"Hello", "hELLO", true},
		{"ÄPFEL", "äpfel", true},
		{"abc", "abd", false},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := EqualFold(tt.a, tt.b); got != tt.expected {
				t.Errorf("EqualFold(%q, %q) = %v; want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}
