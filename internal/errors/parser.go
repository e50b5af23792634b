package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is a parsed storage error: closed code + safe message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseStorageError translates a persistence-layer error into the closed
// code vocabulary. The uniqueness pre-checks in the services catch the
// common duplicate cases up front; this is the backstop for the race where
// the store's unique index fires after the pre-check passed.
func ParseStorageError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: ServerError, Message: "an unexpected error occurred"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: NotFound, Message: "resource not found"}
	}

	errStr := strings.ToLower(err.Error())

	// Postgres unique violation (23505); SQLite reports "UNIQUE constraint failed"
	if strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "unique constraint failed") {
		return parseUniqueViolation(errStr)
	}

	// Foreign key violation (23503): the referenced row is gone
	if strings.Contains(errStr, "foreign key constraint") {
		return ErrorInfo{Code: NotFound, Message: "referenced resource not found"}
	}

	return ErrorInfo{Code: ServerError, Message: "an unexpected error occurred, please try again later"}
}

func parseUniqueViolation(errStr string) ErrorInfo {
	if strings.Contains(errStr, "email") || strings.Contains(errStr, "users") {
		return ErrorInfo{Code: UserExists, Message: "email is already in use"}
	}
	if strings.Contains(errStr, "brands") || strings.Contains(errStr, "idx_brands_name") {
		return ErrorInfo{Code: BrandExists, Message: "a brand with this name already exists"}
	}
	// Place.google_place_id is upserted, so a violation here means a racing
	// insert; callers retry the upsert, the client just sees a server error.
	return ErrorInfo{Code: ServerError, Message: "a conflicting record already exists"}
}

// IsUniqueViolation reports whether err is a store-level unique constraint error
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "unique constraint")
}
