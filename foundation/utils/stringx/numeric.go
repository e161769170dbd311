// File: numeric.go
// Title: Numeric Text Detection
// Description: Decides whether a text is a floating-point literal in the
//              common decimal and hexadecimal notations, including an
//              optional f/F/d/D type suffix and the NaN and Infinity names.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"errors"
	"strconv"
	"strings"
)

// IsNumeric reports whether s parses as a floating-point number.
//
// Surrounding characters up to U+0020 are ignored. One trailing f, F, d or
// D is allowed. The only named values are NaN and Infinity with an
// optional sign, in that exact spelling. Values too large or too small for a
// float64 still count as numeric.
func IsNumeric(s string) bool {
	s = Strip(s)
	if s == "" || strings.ContainsRune(s, '_') {
		return false
	}

	switch s {
	case "NaN", "+NaN", "-NaN", "Infinity", "+Infinity", "-Infinity":
		return true
	}

	if last := s[len(s)-1]; last == 'f' || last == 'F' || last == 'd' || last == 'D' {
		if !isHexLiteral(s) || strings.ContainsAny(s, "pP") {
			s = s[:len(s)-1]
		}
	}

	// strconv accepts inf and nan in any case, which are not literals here
	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 || body == "" || !startsNumeric(body[0]) {
		return false
	}

	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

func startsNumeric(c byte) bool {
	return c == '.' || (c >= '0' && c <= '9')
}
