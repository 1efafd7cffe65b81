// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

const (
	minUsernameLen = 3
	maxUsernameLen = 30
)

// ValidateUsername checks that a username is well-formed: 3-30 characters,
// starting with a letter or digit, containing only letters, digits,
// underscores, dots and hyphens.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", minUsernameLen)
	}
	if len(username) > maxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", maxUsernameLen)
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username may only contain letters, digits, underscores, dots and hyphens")
	}
	return nil
}
