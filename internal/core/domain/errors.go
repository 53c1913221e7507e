package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token is not valid")

	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentExists   = errors.New("student already exists")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrSubjectExists   = errors.New("subject already exists")
	ErrCourseNotFound  = errors.New("course not found")
	ErrCourseExists    = errors.New("course already exists")
	ErrNewsNotFound    = errors.New("news article not found")
	ErrNewsExists      = errors.New("news article already exists")
	ErrEventNotFound   = errors.New("event not found")
	ErrEventExists     = errors.New("event already exists")
	ErrStaffNotFound   = errors.New("staff member not found")
	ErrStaffExists     = errors.New("staff member already exists")
)

// ValidationError aggregates field-level validation failures so a single 400
// response can list all of them, the way Mongoose reports schema errors.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}
