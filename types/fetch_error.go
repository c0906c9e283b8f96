package types

import (
	"errors"
	"fmt"
)

type FetchErrorKind int

const (
	KindNetwork    FetchErrorKind = iota // Unreachable host, timeout, cancelled request
	KindHTTPStatus                       // Any non-success status code
	KindParse                            // Malformed body or missing fields
)

func (k FetchErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http status"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// FetchError is the single failure category returned by price providers.
// The kind is informational only, callers handle every kind the same way.
type FetchError struct {
	Kind       FetchErrorKind
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("fetch %s: unexpected status code: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s error: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err, or any error it wraps, is a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
