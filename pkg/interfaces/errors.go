package interfaces

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure for exit-code mapping.
type ErrorKind int

const (
	KindConfig ErrorKind = iota + 1
	KindUsage
	KindNotFound
	KindAPI
	KindInterrupt
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindUsage:
		return "usage"
	case KindNotFound:
		return "not found"
	case KindAPI:
		return "api"
	case KindInterrupt:
		return "interrupt"
	default:
		return "unknown"
	}
}

// Process exit statuses.
const (
	ExitOK      = 0
	ExitFatal   = 1
	ExitFailure = 255 // -1 as seen by the shell
)

// ExitError carries a classified failure up to the process boundary.
type ExitError struct {
	Kind ErrorKind
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// Code returns the process exit status for this error.
func (e *ExitError) Code() int {
	switch e.Kind {
	case KindConfig, KindUsage, KindInterrupt:
		return ExitFatal
	default:
		return ExitFailure
	}
}

// Errorf builds an ExitError of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) error {
	return &ExitError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Classify wraps err as kind unless it already carries a classification.
func Classify(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return err
	}
	return &ExitError{Kind: kind, Err: err}
}

// KindOf returns the classification of err, or 0 when it has none.
func KindOf(err error) ErrorKind {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return 0
}

// ExitCode maps any error to a process exit status. Unclassified errors are fatal.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code()
	}
	return ExitFatal
}
