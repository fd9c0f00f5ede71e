package errors

import (
	"fmt"
)

// ParseError represents an override file that could not be read or decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ColorFormatError reports a color string that is not hex, rgb() or rgba().
type ColorFormatError struct {
	Path  string
	Value string
	Err   error
}

// NewColorFormatError constructs a ColorFormatError for the token at path.
func NewColorFormatError(path, value string, err error) error {
	return &ColorFormatError{Path: path, Value: value, Err: err}
}

func (e *ColorFormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("invalid color format: %s: %q", e.Path, e.Value)
	}
	return fmt.Sprintf("invalid color format: %q", e.Value)
}

// Unwrap exposes the underlying error.
func (e *ColorFormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ThemeShapeError reports an override or resolved theme that does not fit the
// token schema: unknown keys, wrong value kinds, or broken invariants.
type ThemeShapeError struct {
	Path    string
	Message string
	Err     error
}

// NewThemeShapeError constructs a ThemeShapeError.
func NewThemeShapeError(path, message string, err error) error {
	return &ThemeShapeError{Path: path, Message: message, Err: err}
}

func (e *ThemeShapeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("invalid theme shape: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("invalid theme shape: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ThemeShapeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
