package errors

import "errors"

// Gateway errors
var (
	ErrUpload            = errors.New("audio upload failed")
	ErrRemoteProcessing  = errors.New("remote processing failed")
	ErrMalformedResponse = errors.New("malformed analysis response")
	ErrNotConfigured     = errors.New("ai provider not configured")
)

// Identity errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Meeting and task errors
var (
	ErrMissingFile     = errors.New("missing uploaded file")
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskLocked      = errors.New("task is locked")
	ErrForbidden       = errors.New("forbidden access")
	ErrInvalidInput    = errors.New("invalid input")
)
