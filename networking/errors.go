package networking

import "fmt"

// ErrorKind classifies why a fetch failed
type ErrorKind int

const (
	KindInvalidSource ErrorKind = iota + 1
	KindTransportFailure
	KindDecodeFailure
	KindEmptyPayload
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidSource:
		return "invalid_source"
	case KindTransportFailure:
		return "transport_failure"
	case KindDecodeFailure:
		return "decode_failure"
	case KindEmptyPayload:
		return "empty_payload"
	default:
		return "unknown"
	}
}

// FetchError is the failure value carried by a Result
type FetchError struct {
	Kind  ErrorKind
	Cause error
}

// Sentinels for errors.Is. They match any FetchError of the same kind.
var (
	ErrInvalidSource    = &FetchError{Kind: KindInvalidSource}
	ErrTransportFailure = &FetchError{Kind: KindTransportFailure}
	ErrDecodeFailure    = &FetchError{Kind: KindDecodeFailure}
	ErrEmptyPayload     = &FetchError{Kind: KindEmptyPayload}
)

// NewFetchError creates a FetchError of the given kind
func NewFetchError(kind ErrorKind, cause error) *FetchError {
	return &FetchError{Kind: kind, Cause: cause}
}

func (e *FetchError) Error() string {
	var msg string
	switch e.Kind {
	case KindInvalidSource:
		msg = "invalid request source"
	case KindTransportFailure:
		msg = "transport failed"
	case KindDecodeFailure:
		msg = "failed to decode recipes"
	case KindEmptyPayload:
		msg = "no recipes returned"
	default:
		msg = "fetch failed"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Cause }

// Is matches another FetchError of the same kind when the target carries no cause
func (e *FetchError) Is(target error) bool {
	other, ok := target.(*FetchError)
	if !ok || other == nil {
		return false
	}
	if other.Cause == nil {
		return e.Kind == other.Kind
	}
	return e.Equal(other)
}

// Equal compares kind and cause message
func (e *FetchError) Equal(other *FetchError) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Kind != other.Kind {
		return false
	}
	return causeMessage(e.Cause) == causeMessage(other.Cause)
}

func causeMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
