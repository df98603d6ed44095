// Package apperr mendefinisikan taksonomi error aplikasi:
// Validation, Auth, Signature, NotFound, Upstream.
// Kebijakan propagasi: Validation/Auth/Signature ditolak di boundary tanpa
// side effect; Upstream dicatat dengan konteks lalu disajikan generik.
package apperr

import "fmt"

type Kind int

const (
	Validation Kind = iota
	Auth
	Signature
	NotFound
	Upstream
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Auth:
		return "auth"
	case Signature:
		return "signature"
	case NotFound:
		return "not_found"
	default:
		return "upstream"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Is memudahkan pengecekan kind lewat errors.As di boundary.
func Is(err error, kind Kind) bool {
	ae, ok := err.(*Error)
	return ok && ae.Kind == kind
}
