// File: compiler.go
// Title: Pattern Compilers
// Description: Defines the Matcher and Compiler abstractions and the two
//              built-in engines: the standard library regexp package and
//              coregex. Both accept RE2 syntax and report syntax errors in
//              the same format.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation with stdlib and coregex engines

package regexx

import (
	"regexp"

	"github.com/coregx/coregex"

	mdwerrors "github.com/msto63/stringkit/foundation/core/errors"
	"github.com/msto63/stringkit/pkg/core/config"
)

// Matcher is a compiled pattern. Implementations must be safe for
// concurrent use.
type Matcher interface {
	// MatchString reports whether s contains any match of the pattern
	MatchString(s string) bool

	// ReplaceAllString replaces every match in src with repl, expanding
	// $1 and ${name} references
	ReplaceAllString(src, repl string) string

	// Split slices s into substrings separated by matches
	Split(s string, n int) []string

	// String returns the source pattern text
	String() string
}

// Compiler turns pattern text into a Matcher
type Compiler interface {
	// Name identifies the engine in logs, metrics and configuration
	Name() string

	// Compile parses pattern. Syntax errors are returned unchanged.
	Compile(pattern string) (Matcher, error)
}

// StdlibCompiler compiles with the standard library regexp package
type StdlibCompiler struct{}

// Name returns "stdlib"
func (StdlibCompiler) Name() string { return config.EngineStdlib }

// Compile compiles pattern with regexp.Compile
func (StdlibCompiler) Compile(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// CoregexCompiler compiles with github.com/coregx/coregex
type CoregexCompiler struct{}

// Name returns "coregex"
func (CoregexCompiler) Name() string { return config.EngineCoregex }

// Compile compiles pattern with coregex.Compile
func (CoregexCompiler) Compile(pattern string) (Matcher, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// CompilerFor resolves an engine name. The empty name selects stdlib.
func CompilerFor(name string) (Compiler, error) {
	switch name {
	case "", config.EngineStdlib:
		return StdlibCompiler{}, nil
	case config.EngineCoregex:
		return CoregexCompiler{}, nil
	default:
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleRegexx, "compiler_for", name,
			config.EngineStdlib+" or "+config.EngineCoregex)
	}
}
