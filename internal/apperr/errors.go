package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput      = errors.New("empty input: missing header row")
	ErrMissingColumn   = errors.New("missing required column")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrDuplicateValue  = errors.New("duplicate value in unique column")
	ErrInvalidEncoding = errors.New("invalid character encoding")
)

// ParseError reports input that is not a valid export for the configured mapping.
// Row is the 1-based data row (0 for the header), Line the line in the source file.
type ParseError struct {
	Row    int
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse error")
	switch {
	case e.Row > 0:
		fmt.Fprintf(&b, " on row %d (line %d)", e.Row, e.Line)
	case e.Line > 0:
		fmt.Fprintf(&b, " on line %d", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, ", column %q", e.Column)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, ", value %q", e.Value)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func NewHeaderError(column string, err error) *ParseError {
	return &ParseError{Line: 1, Column: column, Err: err}
}

func NewParseError(row, line int, column, value string, err error) *ParseError {
	return &ParseError{Row: row, Line: line, Column: column, Value: value, Err: err}
}

// IOError reports a source that could not be read at all.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("io error: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func NewIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}

// WithPath fills in the source path on an IOError found in err's chain.
func WithPath(err error, path string) error {
	var ioe *IOError
	if errors.As(err, &ioe) && ioe.Path == "" {
		ioe.Path = path
	}
	return err
}

// ValidationError reports an invalid mapping configuration.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}
