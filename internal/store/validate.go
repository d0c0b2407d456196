package store

import (
	"strings"
	"unicode/utf8"
)

// Validation is the outcome of an input check. Rejected input is reported
// here rather than raised, so callers can surface the message as-is.
type Validation struct {
	Valid   bool
	Message string
}

func accept() Validation { return Validation{Valid: true} }

func reject(message string) Validation { return Validation{Message: message} }

// Err converts a failed validation into a *ValidationError, nil when valid.
func (v Validation) Err(field string) error {
	if v.Valid {
		return nil
	}
	return &ValidationError{Field: field, Reason: v.Message}
}

// ValidateUsername checks the display name: 2 to 30 characters after
// trimming surrounding whitespace.
func ValidateUsername(username string) Validation {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return reject("username is required")
	}
	length := utf8.RuneCountInString(trimmed)
	if length < 2 {
		return reject("username must be at least 2 characters")
	}
	if length > 30 {
		return reject("username must be less than 30 characters")
	}
	return accept()
}

// ValidatePassword checks the minimum password length. Credentials are
// verified by the identity provider; this only gates what we accept.
func ValidatePassword(password string) Validation {
	if password == "" {
		return reject("password is required")
	}
	if utf8.RuneCountInString(password) < 6 {
		return reject("password must be at least 6 characters")
	}
	return accept()
}

// ValidateRating accepts an absent rating or an integer in [1,10].
func ValidateRating(rating *int) Validation {
	if rating == nil {
		return accept()
	}
	if *rating < 1 || *rating > 10 {
		return reject("rating must be between 1 and 10")
	}
	return accept()
}

// ValidateStatus accepts only the five known statuses.
func ValidateStatus(status Status) Validation {
	if !status.Valid() {
		return reject("invalid status type")
	}
	return accept()
}
