package helpers

import (
	"regexp"
	"strings"
)

// emailPattern matches the standard local@domain.tld shape: one or more
// non-space-non-@ characters, "@", one or more non-space-non-@ characters,
// ".", one or more non-space-non-@ characters.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsBlank reports whether the string is empty after trimming whitespace.
// Trimming is applied to the check only, never to the stored value.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsEmailValid checks if the provided string looks like a well-formed
// email address. An empty string is not a valid email.
func IsEmailValid(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
