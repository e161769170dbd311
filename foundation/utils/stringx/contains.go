// File: contains.go
// Title: Multi-Substring Search
// Description: Reports whether any of several substrings occurs in a text.
//              Lists with more than one item are searched in a single pass
//              with an Aho-Corasick automaton.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/coregx/ahocorasick"
)

// ContainsAny reports whether at least one item is a substring of s.
// An empty item matches every text; no items match nothing.
func ContainsAny(s string, items ...string) bool {
	switch len(items) {
	case 0:
		return false
	case 1:
		return strings.Contains(s, items[0])
	}

	builder := ahocorasick.NewBuilder()
	for _, item := range items {
		if item == "" {
			return true
		}
		builder.AddPattern([]byte(item))
	}

	automaton, err := builder.Build()
	if err != nil {
		return containsAnyLinear(s, items)
	}
	return automaton.IsMatch([]byte(s))
}

// ContainsAnyFold is ContainsAny after mapping s and every item to lower
// case with the configured locale
func ContainsAnyFold(s string, items ...string) bool {
	lowered := make([]string, len(items))
	for i, item := range items {
		lowered[i] = Lower(item)
	}
	return ContainsAny(Lower(s), lowered...)
}

func containsAnyLinear(s string, items []string) bool {
	for _, item := range items {
		if strings.Contains(s, item) {
			return true
		}
	}
	return false
}
