package hwmon

import (
	"errors"
	"fmt"
	"io/fs"
)

// IOError is returned when a sensor file could not be read.
type IOError struct {
	// Context describes the attempted operation, e.g. "reading value from /sys/.../temp1_input"
	Context string
	Err     error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("IO error while %s: %v", e.Context, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a sensor file does not contain a valid decimal number.
type ParseError struct {
	Path    string
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q from %s: %v", e.Content, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err was caused by a missing sensor file.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsIOError reports whether err is (or wraps) an IOError.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
