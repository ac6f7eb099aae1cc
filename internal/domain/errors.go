package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per error kind. A *Error unwraps to the sentinel of
// its kind so callers can use errors.Is without knowing the concrete type.
var (
	ErrValidation = errors.New("validation error")
	ErrUpstream   = errors.New("upstream error")
	ErrDomain     = errors.New("domain error")
)

// Kind classifies a pipeline failure.
type Kind int

const (
	// KindValidation means a required argument is missing or empty.
	KindValidation Kind = iota + 1
	// KindUpstream means an external service failed or answered non-2xx.
	KindUpstream
	// KindDomain means the upstream payload is valid but unusable.
	KindDomain
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	case KindDomain:
		return "domain"
	default:
		return "unknown"
	}
}

// Error is the tagged error carried out of clients and normalizers.
// Message is the user-visible text; Err is the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindUpstream:
		return ErrUpstream
	default:
		return ErrDomain
	}
}

// NewValidationError reports a missing or empty argument.
func NewValidationError(arg string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("missing required argument %q", arg),
	}
}

// NewUpstreamError wraps a failed upstream call. message is shown to users.
func NewUpstreamError(message string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: cause}
}

// NewDomainError reports an unusable upstream payload.
func NewDomainError(message string) *Error {
	return &Error{Kind: KindDomain, Message: message}
}

// KindOf returns the kind of err, or 0 if err is not a *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
