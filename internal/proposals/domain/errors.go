package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFee  = errors.New("invalid fee")
	ErrNegativeFee = errors.New("fee must not be negative")
)

// Kind identifies one class of exchange failure. The set is closed.
type Kind int

const (
	KindInvalidEndpoint Kind = iota + 1
	KindEncodingFailure
	KindTransportFailure
	KindServerRejected
	KindMalformedResponse
	KindDecodingFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidEndpoint:
		return "invalid_endpoint"
	case KindEncodingFailure:
		return "encoding_failure"
	case KindTransportFailure:
		return "transport_failure"
	case KindServerRejected:
		return "server_rejected"
	case KindMalformedResponse:
		return "malformed_response"
	case KindDecodingFailure:
		return "decoding_failure"
	}
	return "unknown"
}

// Sentinels for errors.Is matching by kind
var (
	ErrInvalidEndpoint   = &Error{Kind: KindInvalidEndpoint}
	ErrEncodingFailure   = &Error{Kind: KindEncodingFailure}
	ErrTransportFailure  = &Error{Kind: KindTransportFailure}
	ErrServerRejected    = &Error{Kind: KindServerRejected}
	ErrMalformedResponse = &Error{Kind: KindMalformedResponse}
	ErrDecodingFailure   = &Error{Kind: KindDecodingFailure}
)

// Error is the single error type returned by the proposal exchange.
type Error struct {
	Kind Kind
	// Op is the exchange operation, "submit" or "list". Empty for codec errors.
	Op string
	// StatusCode is set for KindServerRejected only.
	StatusCode int
	// Message is the store's error message when the rejection body carried one.
	Message *string
	Err     error
}

func (e *Error) Error() string {
	prefix := e.Kind.String()
	if e.Op != "" {
		prefix = e.Op + ": " + prefix
	}

	switch e.Kind {
	case KindServerRejected:
		if e.Message != nil {
			return fmt.Sprintf("%s: status %d: %s", prefix, e.StatusCode, *e.Message)
		}
		return fmt.Sprintf("%s: status %d", prefix, e.StatusCode)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", prefix, e.Err)
		}
		return prefix
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func NewServerRejected(op string, status int, message *string) *Error {
	return &Error{Kind: KindServerRejected, Op: op, StatusCode: status, Message: message}
}
