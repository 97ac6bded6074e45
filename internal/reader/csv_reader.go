package reader

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/dove-guide/internal/apperr"
	"github.com/DjordjeVuckovic/dove-guide/pkg/apis/datamapping"
)

type CSVReader struct {
	reader   io.Reader
	encoding string
	comma    rune

	csv    *csv.Reader
	header []string
	row    int
	err    error
}

type CSVOption func(*CSVReader)

// WithEncoding sets the source character encoding; see datamapping.Encoding*.
func WithEncoding(encoding string) CSVOption {
	return func(cr *CSVReader) {
		cr.encoding = encoding
	}
}

func WithComma(comma rune) CSVOption {
	return func(cr *CSVReader) {
		cr.comma = comma
	}
}

func NewCSVReader(reader io.Reader, opts ...CSVOption) *CSVReader {
	cr := &CSVReader{
		reader:   reader,
		encoding: datamapping.EncodingUTF8,
		comma:    ',',
	}
	for _, opt := range opts {
		opt(cr)
	}
	return cr
}

// Header reads and returns the header row. Input without one is a ParseError.
func (cr *CSVReader) Header() ([]string, error) {
	if cr.header != nil || cr.err != nil {
		return cr.header, cr.err
	}

	decoded, err := newDecodingReader(cr.reader, cr.encoding)
	if err != nil {
		cr.err = err
		return nil, err
	}
	cr.csv = csv.NewReader(decoded)
	cr.csv.Comma = cr.comma

	header, err := cr.csv.Read()
	if err == io.EOF {
		cr.err = &apperr.ParseError{Err: apperr.ErrEmptyInput}
		return nil, cr.err
	}
	if err != nil {
		cr.err = cr.classify(err)
		return nil, cr.err
	}

	seen := make(map[string]struct{}, len(header))
	for _, h := range header {
		if cr.checkUTF8() && !utf8.ValidString(h) {
			cr.err = apperr.NewHeaderError(h, apperr.ErrInvalidEncoding)
			return nil, cr.err
		}
		if _, dup := seen[h]; dup {
			cr.err = apperr.NewHeaderError(h, apperr.ErrDuplicateColumn)
			return nil, cr.err
		}
		seen[h] = struct{}{}
	}

	slog.Debug("Read CSV header", "columns", len(header), "encoding", cr.encoding)
	cr.header = header
	return cr.header, nil
}

// Next returns the next data row, or io.EOF once the input is exhausted.
func (cr *CSVReader) Next() (Record, error) {
	if _, err := cr.Header(); err != nil {
		return Record{}, err
	}

	row, err := cr.csv.Read()
	if err == io.EOF {
		return Record{}, io.EOF
	}
	cr.row++
	if err != nil {
		return Record{}, cr.classify(err)
	}

	line, _ := cr.csv.FieldPos(0)
	record := Record{
		Row:    cr.row,
		Line:   line,
		Values: make(map[string]string, len(cr.header)),
	}
	for i, h := range cr.header {
		if cr.checkUTF8() && !utf8.ValidString(row[i]) {
			return Record{}, apperr.NewParseError(record.Row, record.Line, h, "", apperr.ErrInvalidEncoding)
		}
		record.Values[h] = row[i]
	}
	return record, nil
}

// Read returns every remaining data row, failing on the first bad one.
func (cr *CSVReader) Read() ([]Record, error) {
	var records []Record
	for {
		record, err := cr.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

func (cr *CSVReader) checkUTF8() bool {
	return cr.encoding == "" || cr.encoding == datamapping.EncodingUTF8
}

// classify separates malformed CSV from failures of the underlying source.
func (cr *CSVReader) classify(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &apperr.ParseError{Row: cr.row, Line: pe.Line, Err: pe.Err}
	}
	return apperr.NewIOError("read", "", err)
}
