package catalog

import (
	"errors"
	"fmt"
)

// NotFoundError reports that an entity of the given kind does not exist. The kind
// travels with the error so callers can render messages without string matching.
type NotFoundError struct {
	Kind Kind
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

// ParentNotFoundError reports a create under a parent that does not exist, e.g. a
// foreign-key violation when inserting a submenu under a deleted menu. Kind names
// the missing parent, not the entity being created.
type ParentNotFoundError struct {
	Kind Kind
}

func (e *ParentNotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

// NewNotFound builds a NotFoundError for the given kind.
func NewNotFound(kind Kind) error {
	return &NotFoundError{Kind: kind}
}

// NewParentNotFound builds a ParentNotFoundError for the missing parent kind.
func NewParentNotFound(kind Kind) error {
	return &ParentNotFoundError{Kind: kind}
}

// IsNotFound reports whether err is a NotFoundError or ParentNotFoundError.
func IsNotFound(err error) bool {
	_, ok := NotFoundKind(err)
	return ok
}

// NotFoundKind extracts the missing entity kind from a not-found style error.
func NotFoundKind(err error) (Kind, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Kind, true
	}
	var pnf *ParentNotFoundError
	if errors.As(err, &pnf) {
		return pnf.Kind, true
	}
	return "", false
}
