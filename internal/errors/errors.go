// Package errors carries the application's failure taxonomy and the CLI's
// fatal-exit helpers. Every failure mode degrades to last-known-good in-memory
// state; nothing here is fatal to the process except the explicit Fatal paths
// used by command entrypoints.
package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/fozzle/internal/logger"
)

// ValidationError means caller-supplied data violates an invariant. It is
// reported synchronously and no state change occurs.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// SyncError means the persistence backend rejected or failed an optimistic
// mutation. The in-memory state has already been rolled back to its
// pre-mutation snapshot when this is returned.
type SyncError struct {
	Op  string
	Err error
}

func (e *SyncError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sync failed for %s", e.Op)
	}
	return fmt.Sprintf("sync failed for %s: %v", e.Op, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// IsSync reports whether err is a SyncError.
func IsSync(err error) bool {
	var se *SyncError
	return errors.As(err, &se)
}

// LoadError means the initial bulk load failed. The store falls back to empty
// collections and default settings, so this is reported but non-fatal.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load failed: %v", e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
