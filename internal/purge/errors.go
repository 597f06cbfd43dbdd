package purge

import (
	"errors"
	"fmt"
)

var (
	// ErrProjectNotFound is returned when the purge target does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrConflict marks an API error caused by a resource that is still
	// referenced. Cloud implementations wrap 409 responses with it.
	ErrConflict = errors.New("resource conflict")
)

// Operations reported by KindError.
const (
	OpList   = "list"
	OpDelete = "delete"
)

// KindError is a failure to list or delete one kind of resource.
type KindError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *KindError) Error() string {
	if e.Op == OpList {
		return fmt.Sprintf("failed to gather %s information: %v", e.Kind.Plural(), e.Err)
	}
	return fmt.Sprintf("failed to delete %s: %v", e.Kind.Plural(), e.Err)
}

func (e *KindError) Unwrap() error {
	return e.Err
}

// IsConflict reports whether err is a tolerated-kind conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
