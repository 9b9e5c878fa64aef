package utils

import "strings"

// IsBlank reports whether a string is empty or whitespace-only.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
