package ast

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a span assignment that would erase location
// information. It always signals caller misuse, never a data condition.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDuplicateAnnotation reports a second Annotate call with a key that is
// already present on the node.
var ErrDuplicateAnnotation = errors.New("duplicate annotation")

// DuplicateAnnotationError carries the offending key alongside
// ErrDuplicateAnnotation.
type DuplicateAnnotationError struct {
	Key any
}

func (e *DuplicateAnnotationError) Error() string {
	return fmt.Sprintf("annotation key %v already present", e.Key)
}

// Is makes errors.Is(err, ErrDuplicateAnnotation) hold.
func (e *DuplicateAnnotationError) Is(target error) bool {
	return target == ErrDuplicateAnnotation
}
