// Package strings provides string helpers shared by request normalization.
package strings

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
//
//	DedupeAndTrim([]string{"  a ", "b", "a", "", "  "}) // []string{"a", "b"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

// SplitList splits comma-separated entries of every value and flattens them,
// so both ?status=Open&status=Fulfilled and ?status=Open,Fulfilled work.
func SplitList(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, ",")...)
	}
	return DedupeAndTrim(out)
}

// UpperFirst upper-cases the first rune: "fuelLevel" -> "FuelLevel".
// Used to derive field-scoped validation codes.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
