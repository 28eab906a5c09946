package database

import "strings"

// IsIntegrityViolation reports whether err is a unique or check constraint
// violation from the storage layer. Signup and profile edits rely on the
// database rejecting duplicate or empty unique fields at commit time, so the
// handlers need to tell those apart from other database errors.
func IsIntegrityViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "CHECK constraint failed") || // SQLite
		strings.Contains(msg, "Duplicate entry") || // MySQL
		strings.Contains(msg, "duplicate key value violates unique constraint") || // PostgreSQL
		strings.Contains(msg, "violates check constraint") // PostgreSQL
}
