// File: contains_test.go
// Title: Unit Tests for Multi-Substring Search
// Description: Tests ContainsAny and ContainsAnyFold for single and
//              multi-item lists, empty items and Unicode text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"testing"
)

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		items    []string
		expected bool
	}{
		{"no items", "hello", nil, false},
		{"single hit", "hello world", []string{"world"}, true},
		{"single miss", "hello world", []string{"moon"}, false},
		{"multi hit last", "hello world", []string{"moon", "sun", "wor"}, true},
		{"multi miss", "hello world", []string{"moon", "sun", "star"}, false},
		{"empty item", "hello", []string{"x", ""}, true},
		{"empty item on empty text", "", []string{""}, true},
		{"empty text", "", []string{"a", "b"}, false},
		{"case sensitive", "Hello", []string{"hello", "HELLO"}, false},
		{"unicode", "grüße aus köln", []string{"paris", "köln"}, true},
		{"overlapping", "abcd", []string{"bcx", "cd"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsAny(tt.input, tt.items...); got != tt.expected {
				t.Errorf("ContainsAny(%q, %q) = %v; want %v", tt.input, tt.items, got, tt.expected)
			}
			if got := containsAnyLinear(tt.input, tt.items); got != tt.expected {
				t.Errorf("containsAnyLinear(%q, %q) = %v; want %v", tt.input, tt.items, got, tt.expected)
			}
		})
	}
}

func TestContainsAnyFold(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		items    []string
		expected bool
	}{
		{"case differs", "Hello World", []string{"WORLD"}, true},
		{"multi", "ERROR: disk full", []string{"warn", "error"}, true},
		{"miss", "all good", []string{"ERROR", "WARN"}, false},
		{"umlaut", "STRASSE IN KÖLN", []string{"köln", "bonn"}, true},
		{"no items", "x", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsAnyFold(tt.input, tt.items...); got != tt.expected {
				t.Errorf("ContainsAnyFold(%q, %q) = %v; want %v", tt.input, tt.items, got, tt.expected)
			}
		})
	}
}

func TestContainsAnyManyItems(t *testing.T) {
	items := make([]string, 0, 64)
	for i := 0; i < 64; i++ {
		items = append(items, fmt.Sprintf("token-%02d;", i))
	}

	if !ContainsAny("prefix token-42; suffix", items...) {
		t.Error("ContainsAny() should find token-42;")
	}
	if ContainsAny("prefix token-64; suffix", items...) {
		t.Error("ContainsAny() should not find token-64;")
	}
}
