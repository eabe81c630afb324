package domain

import (
	"errors"
	"fmt"
)

// ErrInputClosed is returned by interactive selection when the input stream
// ends before a valid choice was read.
var ErrInputClosed = errors.New("input closed before a folder was selected")

// ConfigurationError reports that the environment value a platform needs is
// missing, which usually means the host does not use that convention.
type ConfigurationError struct {
	Platform Platform
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: environment variable %s is not set (wrong platform?)", e.Platform.Label(), e.Variable)
}

// NotFoundError reports that discovery finished without a usable folder.
type NotFoundError struct {
	Platform Platform
	What     string
	BaseErr  error
}

func (e *NotFoundError) Error() string {
	text := "cannot find " + e.What
	if e.Platform != "" {
		text = e.Platform.Label() + ": " + text
	}
	if e.BaseErr != nil {
		text = fmt.Sprintf("%s: %s", text, e.BaseErr)
	}
	return text
}

func (e *NotFoundError) Unwrap() error { return e.BaseErr }

// IsConfiguration reports whether err is, or wraps, a *ConfigurationError.
func IsConfiguration(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is, or wraps, a *NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}
