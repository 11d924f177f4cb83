package billplz

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// KindTransport is a network or IO failure before a response was read.
	KindTransport ErrorKind = iota + 1
	// KindAPI is a structured error envelope returned by Billplz.
	KindAPI
	// KindParse is a response body that did not match the expected shape.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

var ErrBuilderConsumed = errors.New("billplz: builder already sent")

// Error is returned by every operation that talks to Billplz.
// Type and Message are only set for KindAPI. StatusCode is zero for
// KindTransport.
type Error struct {
	Kind       ErrorKind
	Type       string
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("HTTP error: %v", e.Err)
	case KindAPI:
		return fmt.Sprintf("API error (%s): %s", e.Type, e.Message)
	case KindParse:
		if e.StatusCode != 0 && !isSuccess(e.StatusCode) {
			return fmt.Sprintf("JSON parse error (status %d): %v", e.StatusCode, e.Err)
		}
		return fmt.Sprintf("JSON parse error: %v", e.Err)
	default:
		return fmt.Sprintf("billplz error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}
