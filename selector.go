package josa

import (
	"fmt"
	"strings"
)

// Policy decides what happens when a word does not end in a Hangul syllable.
type Policy int

const (
	// PolicyTable uses the josa's own fallback form and fails when it has none.
	PolicyTable Policy = iota
	// PolicyNoCoda treats non-Hangul endings as open syllables, the way
	// loanwords and numerals are most often read aloud.
	PolicyNoCoda
	// PolicyCoda treats non-Hangul endings as closed syllables.
	PolicyCoda
	// PolicyStrict always fails on non-Hangul endings.
	PolicyStrict
)

var policyNames = [...]string{
	PolicyTable:  "table",
	PolicyNoCoda: "nocoda",
	PolicyCoda:   "coda",
	PolicyStrict: "strict",
}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy accepts the names printed by Policy.String. The empty string
// is PolicyTable.
func ParsePolicy(s string) (Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PolicyTable, nil
	}
	for i, name := range policyNames {
		if name == s {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Selector picks josa forms under a fixed non-Hangul policy. The zero value
// uses PolicyTable and is what the package-level functions use.
type Selector struct {
	policy Policy
}

type Option func(*Selector)

func WithPolicy(p Policy) Option {
	return func(s *Selector) {
		s.policy = p
	}
}

func NewSelector(opts ...Option) Selector {
	var s Selector
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s Selector) Policy() Policy { return s.policy }

// Select returns the surface form of j that follows text.
func (s Selector) Select(text string, j Josa) (string, error) {
	r, ok := lastRune(text)
	if !ok {
		return "", &Error{Kind: ErrEmptyInput, Josa: j}
	}
	if !j.valid() {
		return "", &Error{Kind: ErrUnknownJosa, Josa: j}
	}
	f := table[j]

	syl, ok := Decompose(r)
	if ok {
		switch {
		case !syl.HasCoda():
			return f.noCoda, nil
		case j == EuroRo && syl.Jong == jongRieul:
			return f.noCoda, nil
		default:
			return f.coda, nil
		}
	}

	switch s.policy {
	case PolicyNoCoda:
		return f.noCoda, nil
	case PolicyCoda:
		return f.coda, nil
	case PolicyTable:
		if f.fallback != "" {
			return f.fallback, nil
		}
	}
	return "", &Error{Kind: ErrUndeterminedJosa, Josa: j, Last: r}
}

// Append returns text followed by the selected form of j. On failure it
// returns "" and the selection error.
func (s Selector) Append(text string, j Josa) (string, error) {
	form, err := s.Select(text, j)
	if err != nil {
		return "", err
	}
	return text + form, nil
}

// Push appends the selected form of j to *buf. If selection fails *buf is
// left untouched.
func (s Selector) Push(buf *string, j Josa) error {
	if buf == nil {
		return &Error{Kind: ErrNilBuffer, Josa: j}
	}
	form, err := s.Select(*buf, j)
	if err != nil {
		return err
	}
	*buf += form
	return nil
}

// AppendBytes appends text and the selected form of j to dst. On failure
// dst is returned as given.
func (s Selector) AppendBytes(dst []byte, text string, j Josa) ([]byte, error) {
	form, err := s.Select(text, j)
	if err != nil {
		return dst, err
	}
	dst = append(dst, text...)
	return append(dst, form...), nil
}
