package util

import "strings"

// IsUniqueViolation reports whether err is a SQLite unique-constraint
// failure. The driver does not expose a typed error for this, so the
// message is matched directly.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
