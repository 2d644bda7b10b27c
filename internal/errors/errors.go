package errors

import (
	"errors"
	"fmt"
)

// Common error types for the portal gateway
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNetwork            = errors.New("network error")
	ErrNoToken            = errors.New("no token available")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// URL errors
	ErrMalformedURL = errors.New("malformed url")
	ErrNotAllowed   = errors.New("url not in district allow list")

	// Frame errors
	ErrCrossOrigin   = errors.New("cross-origin access restricted")
	ErrFrameDetached = errors.New("frame detached")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
