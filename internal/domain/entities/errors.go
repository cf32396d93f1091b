package entities

import "errors"

// Domain errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")

	ErrMeetingNotFound = errors.New("meeting not found")
	ErrTaskNotFound    = errors.New("task not found")
)
