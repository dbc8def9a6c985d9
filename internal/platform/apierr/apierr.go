// Package apierr carries an HTTP status and a stable machine-readable code
// alongside an underlying error, so the handler layer can classify service
// failures once and the response envelope stays uniform across endpoints.
package apierr

import "fmt"

type Error struct {
	Status int
	Code   string
	Err    error
}

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Error reports the wrapped cause when there is one; the code and status are
// fallbacks so a bare classification still produces a usable message.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Err != nil:
		return e.Err.Error()
	case e.Code != "":
		return e.Code
	case e.Status != 0:
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }
