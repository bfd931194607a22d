package errors

import "errors"

var (
	// ErrTaskNotFound indicates that the requested task does not exist
	ErrTaskNotFound = errors.New("task not found")

	// ErrUserNotFound indicates that no account matches the lookup
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that an account already uses the email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a wrong email or password
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPlanInProgress indicates that another generation holds the user's lock
	ErrPlanInProgress = errors.New("plan generation already in progress")

	// ErrCacheMiss indicates that a cache key is absent
	ErrCacheMiss = errors.New("cache miss")

	// ErrTextServiceUnavailable indicates that the language model could not be reached
	ErrTextServiceUnavailable = errors.New("the AI service could not be reached")
)
