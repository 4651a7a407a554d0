package fragments

import (
	"errors"
	"fmt"
)

// ErrLoaderNotFound is matched by every error reporting a missing loader
var ErrLoaderNotFound = errors.New("fragment loader not registered")

// LoaderNotRegisteredError reports that no loader is registered for a scheme.
// Plugin, when known, names the package that provides the loader.
type LoaderNotRegisteredError struct {
	Scheme string
	Plugin string
}

// Error implements the error interface
func (e *LoaderNotRegisteredError) Error() string {
	if e.Plugin == "" {
		return fmt.Sprintf("fragment loader %q is not available", e.Scheme)
	}
	return fmt.Sprintf("fragment loader %q is not available: install the %s plugin", e.Scheme, e.Plugin)
}

// Is makes errors.Is(err, ErrLoaderNotFound) true
func (e *LoaderNotRegisteredError) Is(target error) bool {
	return target == ErrLoaderNotFound
}

// CommandError is returned by a CommandLoader whose command did not succeed
type CommandError struct {
	Scheme   string
	Command  string
	ExitCode int
	Stderr   string
	Cause    error
}

// Error implements the error interface
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s loader: command %s exited with code %d", e.Scheme, e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the cause of the error
func (e *CommandError) Unwrap() error {
	return e.Cause
}
