package connector

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

type ErrorKind int

const (
	UnknownServiceError ErrorKind = iota
	ConnectionError
	EmptyRangeError
	ShapeMismatchError
)

var (
	ErrUnknownService = errors.New("service error")
	ErrConnection     = errors.New("connection error")
	ErrEmptyRange     = errors.New("the spreadsheet/sheet range is empty")
	ErrShapeMismatch  = errors.New("shape mismatch")
)

// FetchError is returned for every failure after the identity has been loaded. The message
// is always 'An error has occurred: <cause>' so that logs look the same irrespective of
// the kind.
type FetchError struct {
	Kind ErrorKind
	Err  error
}

func (k ErrorKind) String() string {
	switch k {
	case ConnectionError:
		return "connection"
	case EmptyRangeError:
		return "empty range"
	case ShapeMismatchError:
		return "shape mismatch"
	default:
		return "unknown service"
	}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("An error has occurred: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(err error) bool {
	switch err {
	case ErrConnection:
		return e.Kind == ConnectionError
	case ErrEmptyRange:
		return e.Kind == EmptyRangeError
	case ErrShapeMismatch:
		return e.Kind == ShapeMismatchError
	case ErrUnknownService:
		return e.Kind == UnknownServiceError
	}

	return false
}

func fetchError(kind ErrorKind, err error) *FetchError {
	return &FetchError{
		Kind: kind,
		Err:  err,
	}
}

// classify maps an error returned by the Sheets API client to an error kind. Anything that
// failed before getting a response is a connection error.
func classify(err error) ErrorKind {
	var uerr *url.Error
	var nerr net.Error

	switch {
	case errors.As(err, &uerr):
		return ConnectionError

	case errors.As(err, &nerr):
		return ConnectionError

	default:
		return UnknownServiceError
	}
}
