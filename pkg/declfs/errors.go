package declfs

import (
	"fmt"

	"github.com/je4/declfs/pkg/backend"
	"github.com/je4/declfs/pkg/fspath"
)

// ValidationError reports an illegal path component. It is raised before
// any backend interaction.
type ValidationError struct {
	Name string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid name '%s': %v", e.Name, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ConflictError reports a pre-existing object blocking a timid
// declaration.
type ConflictError struct {
	Path     fspath.Path
	Existing backend.Kind
	Want     backend.Kind
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot create %s '%s': %s already exists", e.Want, e.Path, e.Existing)
}

// BackendError wraps a fault raised by the storage backend.
type BackendError struct {
	Op   string
	Path fspath.Path
	Err  error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend cannot %s '%s': %v", e.Op, e.Path, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// UnconfiguredError reports a backend operation attempted with no
// configuration scope in effect.
type UnconfiguredError struct {
	Op string
}

func (e *UnconfiguredError) Error() string {
	return fmt.Sprintf("cannot %s: no backend configured", e.Op)
}
