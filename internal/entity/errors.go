package entity

import (
	"errors"
	"sort"
	"strings"
)

var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Submission errors
	ErrSubmissionDeclined = errors.New("submission declined by reservation API")
	ErrSubmissionFailed   = errors.New("submission failed")

	// Storage errors
	ErrStorageUnavailable = errors.New("durable storage unavailable")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationErrors — ошибки валидации формы по полям.
// Пустая map означает валидную форму.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
