package eval

import (
	"errors"
	"fmt"
)

// W3C-style error codes, one per failure kind the functions can raise.
const (
	CodeType        = "XPTY0004" // operand has the wrong dynamic type
	CodeArgument    = "XPST0017" // wrong number of arguments
	CodeConvert     = "FORG0001" // value not convertible where a number is required
	CodeCollation   = "FOCH0002" // collation unknown to the registry
	CodeSubstring   = "FOCH0004" // collation can not match substrings
	CodeFlags       = "FORX0001" // invalid pattern flag letter
	CodePattern     = "FORX0002" // invalid pattern syntax
	CodeEmptyMatch  = "FORX0003" // pattern matches the zero-length string
	CodeReplacement = "FORX0004" // malformed replacement string
	CodeDocument    = "FODC0002" // document unavailable
	CodeCollection  = "FODC0004" // invalid collection uri
	CodeUser        = "FOER0000" // error() without an explicit code
)

var (
	ErrArgument    = errors.New("invalid number of argument(s)")
	ErrType        = errors.New("invalid type")
	ErrUnavailable = errors.New("resource not available")
)

// DynamicError carries the code of the failure kind next to its cause so
// callers can dispatch on either.
type DynamicError struct {
	Code string
	Err  error
}

func dynamicError(code string, err error) error {
	return DynamicError{
		Code: code,
		Err:  err,
	}
}

func dynamicErrorf(code, format string, args ...any) error {
	return dynamicError(code, fmt.Errorf(format, args...))
}

func (e DynamicError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Err)
}

func (e DynamicError) Unwrap() error {
	return e.Err
}
