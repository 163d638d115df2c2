package repository

import (
	"database/sql"
)

// nullableStringToValue converts a string to a value suitable for SQLite
// storage. Empty strings become SQL NULL so that absent document sections
// stay distinguishable from present-but-blank ones.
func nullableStringToValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// stringFromNull unwraps a sql.NullString, mapping NULL to the empty string.
func stringFromNull(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}
