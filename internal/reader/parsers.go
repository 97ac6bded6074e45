package reader

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/dove-guide/pkg/stringsutil"
	"github.com/google/uuid"
)

// Options carries the per-mapping settings a parser may need.
type Options struct {
	DateFormat string
	Separator  string
}

// FieldParser converts a raw column value into a value of Type.
type FieldParser struct {
	Type  reflect.Type
	Parse func(value string, opts Options) (any, error)
}

// ParserFunc builds a FieldParser whose result type is V.
func ParserFunc[V any](fn func(value string, opts Options) (V, error)) FieldParser {
	return FieldParser{
		Type: reflect.TypeFor[V](),
		Parse: func(value string, opts Options) (any, error) {
			return fn(value, opts)
		},
	}
}

// Parsers is a registry of field parsers keyed by sourceType name.
type Parsers struct {
	byName map[string]FieldParser
}

func NewParsers() *Parsers {
	return &Parsers{byName: make(map[string]FieldParser)}
}

// DefaultParsers returns a fresh registry holding the built-in scalar parsers.
func DefaultParsers() *Parsers {
	return NewParsers().
		Register("string", ParserFunc(parseString)).
		Register("int", ParserFunc(parseInt)).
		Register("float", ParserFunc(parseFloat)).
		Register("bool", ParserFunc(parseBool)).
		Register("flag", ParserFunc(parseFlag)).
		Register("list", ParserFunc(parseList)).
		Register("date", ParserFunc(parseDate)).
		Register("datetime", ParserFunc(parseDateTime)).
		Register("uuid", ParserFunc(parseUUID)).
		Register("url", ParserFunc(parseURL))
}

// Register adds or replaces the parser for name.
func (p *Parsers) Register(name string, fp FieldParser) *Parsers {
	p.byName[name] = fp
	return p
}

func (p *Parsers) Lookup(name string) (FieldParser, bool) {
	fp, ok := p.byName[name]
	return fp, ok
}

func (p *Parsers) Clone() *Parsers {
	c := NewParsers()
	for name, fp := range p.byName {
		c.byName[name] = fp
	}
	return c
}

func parseString(value string, _ Options) (string, error) {
	return value, nil
}

func parseInt(value string, _ Options) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int value '%s': %w", value, err)
	}
	return v, nil
}

func parseFloat(value string, _ Options) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float value '%s': %w", value, err)
	}
	return v, nil
}

func parseBool(value string, _ Options) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("failed to parse bool value '%s': %w", value, err)
	}
	return v, nil
}

// parseFlag treats any non-blank marker ("u/r", "GF", "T") as true.
func parseFlag(value string, _ Options) (bool, error) {
	return strings.TrimSpace(value) != "", nil
}

func parseList(value string, opts Options) ([]string, error) {
	sep := opts.Separator
	if sep == "" {
		sep = ";"
	}
	return stringsutil.SplitTrimmed(value, sep), nil
}

func parseDate(value string, _ Options) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date value '%s': %w", value, err)
	}
	return t, nil
}

// parseDateTime falls back to the layout without fractional seconds when the
// value carries none.
func parseDateTime(value string, opts Options) (time.Time, error) {
	layout := opts.DateFormat
	if layout == "" {
		layout = time.RFC3339
	}
	value = strings.TrimSpace(value)

	t, err := time.Parse(layout, value)
	if err == nil {
		return t, nil
	}
	if fallback, ok := withoutFraction(layout); ok {
		if t, ferr := time.Parse(fallback, value); ferr == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse datetime value '%s': %w", value, err)
}

func withoutFraction(layout string) (string, bool) {
	i := strings.Index(layout, ".0")
	if i < 0 {
		i = strings.Index(layout, ".9")
	}
	if i < 0 {
		return "", false
	}
	j := i + 1
	for j < len(layout) && (layout[j] == '0' || layout[j] == '9') {
		j++
	}
	return layout[:i] + layout[j:], true
}

func parseUUID(value string, _ Options) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to parse uuid value '%s': %w", value, err)
	}
	return id, nil
}

func parseURL(value string, _ Options) (url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return url.URL{}, fmt.Errorf("failed to parse url value '%s': %w", value, err)
	}
	return *u, nil
}
