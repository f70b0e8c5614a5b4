package lifelist

import "strings"

// ObservedDate is the result of normalizing a raw date token. It is either
// recognized, holding a canonical YYYY-MM-DD string, or unrecognized (the
// zero value).
//
// Canonical strings sort lexicographically in chronological order; After
// relies on that. No calendar validation is done, so "2024-02-30" is a valid
// recognized value.
type ObservedDate struct {
	value string
}

// Unrecognized is the ObservedDate for tokens of unknown shape.
var Unrecognized = ObservedDate{}

// OK reports whether the date was recognized.
func (d ObservedDate) OK() bool {
	return d.value != ""
}

// String returns the canonical YYYY-MM-DD form, or "" when unrecognized.
func (d ObservedDate) String() string {
	return d.value
}

// After reports whether d is a recognized date later than other. An
// unrecognized d is never after anything; a recognized d is after an
// unrecognized other.
func (d ObservedDate) After(other ObservedDate) bool {
	if !d.OK() {
		return false
	}
	return !other.OK() || d.value > other.value
}

// NormalizeDate converts a raw date token into an ObservedDate.
//
// YYYY-MM-DD passes through unchanged. M/D/YYYY and MM/DD/YYYY are rewritten
// to YYYY-MM-DD with month and day zero-padded. Every other shape, including
// the empty string, is Unrecognized. The token is not trimmed.
func NormalizeDate(raw string) ObservedDate {
	if isCanonicalDate(raw) {
		return ObservedDate{value: raw}
	}

	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return Unrecognized
	}
	month, day, year := parts[0], parts[1], parts[2]
	if !digitsBetween(month, 1, 2) || !digitsBetween(day, 1, 2) || !digitsBetween(year, 4, 4) {
		return Unrecognized
	}
	return ObservedDate{value: year + "-" + padTwo(month) + "-" + padTwo(day)}
}

func isCanonicalDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	return digitsBetween(s[0:4], 4, 4) && digitsBetween(s[5:7], 2, 2) && digitsBetween(s[8:10], 2, 2)
}

func digitsBetween(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func padTwo(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
