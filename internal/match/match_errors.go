package match

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes a rejected event.
type ErrorKind string

const (
	// KindPrecondition: the match is not in a state that permits the event.
	KindPrecondition ErrorKind = "precondition"
	// KindValidation: the payload is malformed.
	KindValidation ErrorKind = "validation"
	// KindConflict: the payload clashes with the current roles.
	KindConflict ErrorKind = "conflict"
	// KindEmptyHistory: Undo with nothing to undo.
	KindEmptyHistory ErrorKind = "empty_history"
)

// EngineError is returned for every rejected event. The state is unchanged when it is returned.
type EngineError struct {
	Kind    ErrorKind
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches on Kind so that errors.Is(err, ErrEmptyHistory) works for any
// empty-history error.
func (e *EngineError) Is(target error) bool {
	t, ok := target.(*EngineError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// ErrEmptyHistory is returned by Undo when there is no snapshot to restore.
var ErrEmptyHistory = &EngineError{Kind: KindEmptyHistory, Message: "nothing to undo"}

// KindOf extracts the kind of an engine error, or "" for any other error.
func KindOf(err error) ErrorKind {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return ""
}

// IsKind reports whether err is an engine error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

func preconditionf(format string, args ...any) error {
	return &EngineError{Kind: KindPrecondition, Message: fmt.Sprintf(format, args...)}
}

func validationf(format string, args ...any) error {
	return &EngineError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) error {
	return &EngineError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}
