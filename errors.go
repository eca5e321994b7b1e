package josa

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there is no last character to inspect.
	ErrEmptyInput = errors.New("empty string given to josa selector")
	// ErrUndeterminedJosa is returned when the last character is not a
	// Hangul syllable and the josa has no fallback form.
	ErrUndeterminedJosa = errors.New("josa cannot be determined")
	ErrUnknownJosa      = errors.New("unknown josa")
	ErrUnknownPolicy    = errors.New("unknown policy")
	ErrNilBuffer        = errors.New("nil buffer")
)

// Error describes a failed selection. Kind is one of the package sentinels
// and is what errors.Is matches against.
type Error struct {
	Kind error
	Josa Josa
	Last rune
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if errors.Is(e.Kind, ErrUndeterminedJosa) {
		return fmt.Sprintf("%s: %q is not a Hangul syllable (%s)", e.Kind.Error(), e.Last, e.Josa)
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error { return e.Kind }
