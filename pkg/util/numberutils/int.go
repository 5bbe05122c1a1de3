package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return i
	}
	return defaultVal
}

// ToPositiveIntWithDefault is like ToIntWithDefault but also falls back
// when the parsed value is zero or negative.
func ToPositiveIntWithDefault(s string, defaultVal int) int {
	if i := ToIntWithDefault(s, defaultVal); i > 0 {
		return i
	}
	return defaultVal
}
