package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/habitflow/internal/logger"
)

var (
	// ErrClosed is returned when an operation runs against a store that is not open
	ErrClosed = stderrors.New("store is not open")
	// ErrStorage marks any failure inside the storage engine
	ErrStorage = stderrors.New("storage failure")
	// ErrConflict is returned when a record with the same id already exists
	ErrConflict = &conflictError{}
)

// conflictError is a storage failure, so errors.Is(err, ErrStorage) holds for conflicts too
type conflictError struct{}

func (*conflictError) Error() string { return "record already exists" }

func (*conflictError) Is(target error) bool { return target == ErrStorage }

// Storage wraps an engine error with an operation description and ErrStorage
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// Conflict wraps a duplicate-key engine error with ErrConflict
func Conflict(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrConflict, err)
}

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
