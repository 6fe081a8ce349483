package services

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseTaskID coerces a path segment to a task id.
//
// Anything that reads as a number is accepted. Numbers that cannot be a
// primary key (zero, negative, fractional, infinite) become id 0, which the
// store never assigns, so the lookup reports not found.
func ParseTaskID(raw string) (uint64, error) {
	if raw == "" {
		return 0, ErrTaskIDRequired
	}
	n, ok := parseNumber(raw)
	if !ok {
		return 0, ErrTaskIDNotNumber
	}
	return toID(n), nil
}

// CoerceUserID converts a decoded JSON userId to an id using the same rules as ParseTaskID.
func CoerceUserID(value any) (uint64, error) {
	switch v := value.(type) {
	case float64:
		return toID(v), nil
	case string:
		n, ok := parseNumber(v)
		if !ok {
			return 0, ErrUserIDNotNumber
		}
		return toID(n), nil
	default:
		return 0, ErrUserIDNotNumber
	}
}

// truthy mirrors the loose presence check clients rely on: missing, null,
// empty string, zero and false all count as absent.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case float64:
		return v != 0 && !math.IsNaN(v)
	case bool:
		return v
	default:
		return true
	}
}

// parseNumber accepts decimal and exponent notation, 0x/0o/0b integers and
// Infinity. Surrounding whitespace is ignored and a blank string is zero.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		if strings.ContainsRune(s, '_') {
			return 0, false
		}
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return math.Inf(1), true
			}
			return 0, false
		}
		return float64(n), true
	}

	for _, r := range s {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return 0, false
		}
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

func toID(n float64) uint64 {
	if n < 1 || n >= math.MaxInt64 || n != math.Trunc(n) {
		return 0
	}
	return uint64(n)
}
