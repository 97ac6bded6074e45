package dove

import (
	"github.com/DjordjeVuckovic/dove-guide/internal/apperr"
	"github.com/DjordjeVuckovic/dove-guide/internal/reader"
)

type (
	// ParseError means the input is not a valid export for the mapping in use.
	ParseError = apperr.ParseError
	// IOError means the source could not be opened or read.
	IOError = apperr.IOError
	// ValidationError means a mapping document or reader option is invalid.
	ValidationError = apperr.ValidationError

	FieldParser   = reader.FieldParser
	ParserOptions = reader.Options
)

var (
	ErrEmptyInput      = apperr.ErrEmptyInput
	ErrMissingColumn   = apperr.ErrMissingColumn
	ErrUnknownColumn   = apperr.ErrUnknownColumn
	ErrDuplicateColumn = apperr.ErrDuplicateColumn
	ErrDuplicateValue  = apperr.ErrDuplicateValue
	ErrInvalidEncoding = apperr.ErrInvalidEncoding
)

// ParserFunc builds a FieldParser for use with WithParser.
func ParserFunc[V any](fn func(value string, opts ParserOptions) (V, error)) FieldParser {
	return reader.ParserFunc(fn)
}
