package internal

import (
	"fmt"
	"strings"
)

// NotFoundError reports a workspace name lookup miss on load, delete or
// rename.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("workspace %q not found", e.Name)
}

// ConflictError reports a duplicate target name on rename.
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("workspace %q already exists", e.Name)
}

// NoPreviousError reports an empty previous-workspace slot.
type NoPreviousError struct{}

func (e *NoPreviousError) Error() string {
	return "no previous workspace to restore"
}

// InvalidNameError reports a workspace name that fails validation.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid workspace name %q: %s", e.Name, e.Reason)
}

// BatchCloseError reports a failed batch close of the live pane set. It is
// fatal to the operation that triggered it: nothing has been reopened.
type BatchCloseError struct {
	Err error
}

func (e *BatchCloseError) Error() string {
	return fmt.Sprintf("closing open tabs failed: %v", e.Err)
}

func (e *BatchCloseError) Unwrap() error {
	return e.Err
}

// StorageError reports a failure reading or writing the persisted store.
type StorageError struct {
	Path string
	Op   string // "open", "read", "write", "parse"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// isBinaryOpenError reports whether a per-pane open failure looks like the
// host refusing a binary/non-text resource. Those are expected for saved
// tabs pointing at images or build artifacts, so they are skipped quietly.
func isBinaryOpenError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "binary") ||
		strings.Contains(msg, "cannot be opened as text")
}
