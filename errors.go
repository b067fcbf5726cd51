package ibangen

import (
	"errors"
	"fmt"
)

// Kind classifies generation failures so callers can tell user-correctable
// input problems apart from engine defects.
type Kind uint8

const (
	// UnsupportedCountry means the requested code is not in the registry.
	// Recoverable: retry with one of the supported codes.
	UnsupportedCountry Kind = iota + 1

	// InvalidCharacter means checksum transliteration hit a byte outside
	// [0-9A-Z]. This is a defect in a component generator, not bad input.
	InvalidCharacter

	// InternalFault means the post-generation self-check failed. Retrying
	// with different input is pointless; report a bug instead.
	InternalFault

	// InvalidRange means random sampling was asked for an empty range.
	InvalidRange
)

func (k Kind) String() string {
	switch k {
	case UnsupportedCountry:
		return "unsupported country"
	case InvalidCharacter:
		return "invalid character"
	case InternalFault:
		return "internal fault"
	case InvalidRange:
		return "invalid range"
	}
	return "unknown"
}

// Error is the single error type crossing the public contract. Lower-level
// failures are wrapped into it before they reach a caller.
type Error struct {
	Kind    Kind
	Country string
	message string
}

func (e *Error) Error() string {
	if e.Country != "" {
		return fmt.Sprintf("%s: %s: %s", e.Country, e.Kind, e.message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.message)
}

// Is matches any *Error carrying the same Kind, so callers can probe with
// errors.Is(err, &Error{Kind: UnsupportedCountry}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind carried by err, or zero when err is not a domain
// error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind Kind, country, format string, args ...any) *Error {
	return &Error{Kind: kind, Country: country, message: fmt.Sprintf(format, args...)}
}
