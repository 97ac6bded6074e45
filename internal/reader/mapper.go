package reader

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/dove-guide/internal/apperr"
	"github.com/DjordjeVuckovic/dove-guide/pkg/apis/datamapping"
)

type Mapper[T any] interface {
	Map(Record) (T, error)
}

// SchemaMapper is a Mapper that also knows which columns it expects.
type SchemaMapper[T any] interface {
	Mapper[T]
	CheckHeader(header []string) error
	UniqueColumns() []string
}

type MappingLoader interface {
	Load(validate bool) (*datamapping.DataMapper, error)
}

type fieldPlan struct {
	mapping datamapping.FieldMapping
	path    []string
	parser  FieldParser
	opts    Options
}

// RecordMapper maps records onto T according to a DataMapper. It is immutable
// once built and safe for concurrent use.
type RecordMapper[T any] struct {
	cfg    *datamapping.DataMapper
	plans  []fieldPlan
	known  map[string]struct{}
	unique []string
}

// NewRecordMapper validates cfg and checks every target against T and its parser.
func NewRecordMapper[T any](cfg *datamapping.DataMapper, parsers *Parsers) (*RecordMapper[T], error) {
	if cfg == nil {
		return nil, apperr.NewValidation("data mapping is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, apperr.NewValidationWrap("invalid data mapping", err)
	}
	if parsers == nil {
		parsers = DefaultParsers()
	}

	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, apperr.NewValidation(fmt.Sprintf("target type %s is not a struct", t))
	}

	m := &RecordMapper[T]{
		cfg:   cfg,
		plans: make([]fieldPlan, 0, len(cfg.FieldMappings)),
		known: make(map[string]struct{}, len(cfg.FieldMappings)),
	}
	for i, fm := range cfg.FieldMappings {
		parser, ok := parsers.Lookup(fm.Type())
		if !ok {
			return nil, apperr.NewValidation(fmt.Sprintf("fieldMappings[%d]: unknown sourceType %q", i, fm.Type()))
		}
		path := strings.Split(fm.Target, ".")
		ft, err := ResolveField(t, path)
		if err != nil {
			return nil, apperr.NewValidationWrap(fmt.Sprintf("fieldMappings[%d]: target %q", i, fm.Target), err)
		}
		if !Assignable(parser.Type, ft) {
			return nil, apperr.NewValidation(fmt.Sprintf(
				"fieldMappings[%d]: sourceType %q produces %s, target %q is %s", i, fm.Type(), parser.Type, fm.Target, ft))
		}

		m.plans = append(m.plans, fieldPlan{
			mapping: fm,
			path:    path,
			parser:  parser,
			opts: Options{
				DateFormat: cfg.DateLayout(),
				Separator:  fm.ListSeparator(),
			},
		})
		if fm.Unique && !slices.Contains(m.unique, fm.Source) {
			m.unique = append(m.unique, fm.Source)
		}
		m.known[fm.Source] = struct{}{}
	}
	return m, nil
}

func (m *RecordMapper[T]) Config() *datamapping.DataMapper {
	return m.cfg
}

func (m *RecordMapper[T]) UniqueColumns() []string {
	return m.unique
}

// CheckHeader fails on a missing required column, or on an unmapped one in strict mode.
func (m *RecordMapper[T]) CheckHeader(header []string) error {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}

	for _, p := range m.plans {
		if !p.mapping.Required {
			continue
		}
		if _, ok := present[p.mapping.Source]; !ok {
			return apperr.NewHeaderError(p.mapping.Source, apperr.ErrMissingColumn)
		}
	}

	var ignored []string
	for _, h := range header {
		if _, ok := m.known[h]; ok {
			continue
		}
		if m.cfg.Strict {
			return apperr.NewHeaderError(h, apperr.ErrUnknownColumn)
		}
		ignored = append(ignored, h)
	}
	if len(ignored) > 0 {
		slog.Debug("Ignoring unmapped columns", "dataset", m.cfg.Dataset, "columns", ignored)
	}
	return nil
}

// Map builds a fresh T from record. Blank values in optional columns leave the
// target at its zero value.
func (m *RecordMapper[T]) Map(record Record) (T, error) {
	var out T
	val := reflect.ValueOf(&out).Elem()

	for _, p := range m.plans {
		raw, ok := record.Values[p.mapping.Source]
		if !ok {
			if p.mapping.Required {
				var zero T
				return zero, apperr.NewParseError(record.Row, record.Line, p.mapping.Source, "", apperr.ErrMissingColumn)
			}
			continue
		}
		if !p.mapping.Required && strings.TrimSpace(raw) == "" {
			continue
		}

		v, err := p.parser.Parse(raw, p.opts)
		if err != nil {
			var zero T
			return zero, apperr.NewParseError(record.Row, record.Line, p.mapping.Source, raw, err)
		}
		if err := SetField(val, p.path, v); err != nil {
			var zero T
			return zero, apperr.NewParseError(record.Row, record.Line, p.mapping.Source, raw, err)
		}
	}
	return out, nil
}
