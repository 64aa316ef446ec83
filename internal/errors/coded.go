package errors

import (
	"errors"
	"fmt"
)

// CodedError wraps an underlying error with the assessment error code for the
// stage that produced it. The binaries unwrap it to report which stage of a
// run failed before exiting non-zero.
type CodedError struct {
	Code ErrorCode
	Err  error
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("[%s] %s", e.Code, GetErrorMessage(e.Code))
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, GetErrorMessage(e.Code), e.Err)
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Wrap attaches a code to err. A nil err returns nil.
func Wrap(code ErrorCode, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

// CodeOf extracts the error code from err, walking the wrap chain.
// Errors without a code classify as SystemUnexpectedError.
func CodeOf(err error) ErrorCode {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return SystemUnexpectedError
}
