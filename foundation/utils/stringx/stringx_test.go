// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Tests for emptiness, comparison, length, substring and strip
//              helpers, covering nil text and Unicode input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-14 v0.2.0: Tests for nil-aware helpers, Cut and Strip

package stringx

import (
	"testing"
)

func strPtr(s string) *string {
	return &s
}

func TestOrEmpty(t *testing.T) {
	if got := OrEmpty(nil); got != "" {
		t.Errorf("OrEmpty(nil) = %q; want empty", got)
	}
	if got := OrEmpty(strPtr("abc")); got != "abc" {
		t.Errorf("OrEmpty(abc) = %q; want abc", got)
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"hello", 5},
		{"こんにちは", 5},
		{"héllo", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Len(tt.input); got != tt.expected {
				t.Errorf("Len(%q) = %d; want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", false},
		{"normal string", "hello", false},
		{"unicode string", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.input); got != tt.expected {
				t.Errorf("IsEmpty(%q) = %v; want %v", tt.input, got, tt.expected)
			}
			if got := IsNotEmpty(tt.input); got == tt.expected {
				t.Errorf("IsNotEmpty(%q) = %v; want %v", tt.input, got, !tt.expected)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"tab and spaces", " \t ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, got, tt.expected)
			}
			if got := IsNotBlank(tt.input); got == tt.expected {
				t.Errorf("IsNotBlank(%q) = %v; want %v", tt.input, got, !tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *string
		expected bool
	}{
		{"same text", strPtr("abc"), strPtr("abc"), true},
		{"different text", strPtr("abc"), strPtr("abd"), false},
		{"both nil", nil, nil, false},
		{"nil a", nil, strPtr(""), false},
		{"nil b equals empty", strPtr(""), nil, true},
		{"nil b against text", strPtr("abc"), nil, false},
		{"case differs", strPtr("abc"), strPtr("ABC"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.expected {
				t.Errorf("Equal() = %v; want %v", got, tt.expected)
			}
			if got := NotEqual(tt.a, tt.b); got == tt.expected {
				t.Errorf("NotEqual() = %v; want %v", got, !tt.expected)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format("Hello %s, %d", "World", 42); got != "Hello World, 42" {
		t.Errorf("Format() = %q", got)
	}
	if got := Format("no verbs"); got != "no verbs" {
		t.Errorf("Format() = %q", got)
	}
}

func TestCut(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		start, end int
		expected   string
	}{
		{"middle", "hello world", 0, 5, "hello"},
		{"to end", "hello world", 6, 11, "world"},
		{"runes", "こんにちは", 1, 3, "んに"},
		{"negative start", "hello", -3, 2, "he"},
		{"end past length", "hello", 3, 99, "lo"},
		{"empty range", "hello", 2, 2, ""},
		{"inverted range", "hello", 4, 1, ""},
		{"start past length", "hello", 10, 12, ""},
		{"empty input", "", 0, 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cut(tt.input, tt.start, tt.end); got != tt.expected {
				t.Errorf("Cut(%q, %d, %d) = %q; want %q", tt.input, tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces", "  hello  ", "hello"},
		{"controls", "\x00\t\r\nhello\x1f", "hello"},
		{"inner kept", " a b ", "a b"},
		{"non-breaking space kept", "\u00a0x\u00a0", "\u00a0x\u00a0"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input); got != tt.expected {
				t.Errorf("Strip(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripLineBreaks(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  line one\r\nline two\n  ", "line oneline two"},
		{"a\n\n\nb", "ab"},
		{"a\rb", "ab"},
		{"no breaks", "no breaks"},
		{"\n\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := StripLineBreaks(tt.input); got != tt.expected {
				t.Errorf("StripLineBreaks(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}
