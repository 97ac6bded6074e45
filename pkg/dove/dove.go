// Package dove reads the Dove's Guide tower list (dove.csv) into Tower records.
//
// The library bundles no data: callers download dove.csv themselves and pass
// it in. Every read is independent and returns either all rows, in file
// order, or an error.
package dove

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/dove-guide/internal/apperr"
	"github.com/DjordjeVuckovic/dove-guide/internal/collector"
	"github.com/DjordjeVuckovic/dove-guide/internal/reader"
	"github.com/DjordjeVuckovic/dove-guide/pkg/apis/datamapping"
)

//go:embed mappings/towers.yaml
var towersMappingYAML []byte

// TowersMapping returns the column mapping of the published dove.csv.
func TowersMapping() (*datamapping.DataMapper, error) {
	return LoadMapping(bytes.NewReader(towersMappingYAML))
}

// TowersMappingYAML returns the default mapping document as YAML.
func TowersMappingYAML() []byte {
	return bytes.Clone(towersMappingYAML)
}

func LoadMapping(r io.Reader) (*datamapping.DataMapper, error) {
	return reader.NewYAMLConfigLoader(r).Load(true)
}

func LoadMappingFile(path string) (*datamapping.DataMapper, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperr.NewIOError("open", path, err)
	}
	defer file.Close()

	return LoadMapping(file)
}

// Reader reads tower lists with a fixed mapping. It holds no read state and is
// safe for concurrent use.
type Reader struct {
	mapping *datamapping.DataMapper
	parsers *reader.Parsers
	mapper  *reader.RecordMapper[Tower]
}

type Option func(*Reader)

// WithMapping replaces the default dove.csv mapping.
func WithMapping(mapping *datamapping.DataMapper) Option {
	return func(r *Reader) {
		r.mapping = mapping
	}
}

// WithParser registers an additional sourceType for the mapping to use.
func WithParser(name string, fp FieldParser) Option {
	return func(r *Reader) {
		r.parsers.Register(name, fp)
	}
}

func NewReader(opts ...Option) (*Reader, error) {
	r := &Reader{
		parsers: Parsers(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.mapping == nil {
		mapping, err := TowersMapping()
		if err != nil {
			return nil, err
		}
		r.mapping = mapping
	}

	mapper, err := reader.NewRecordMapper[Tower](r.mapping, r.parsers)
	if err != nil {
		return nil, err
	}
	r.mapper = mapper
	return r, nil
}

func (r *Reader) Mapping() *datamapping.DataMapper {
	return r.mapping
}

// Read parses a whole tower list from src.
func (r *Reader) Read(src io.Reader) ([]Tower, error) {
	csvReader := reader.NewCSVReader(src, reader.WithEncoding(r.mapping.NormalizedEncoding()))
	return collector.NewCollector[Tower](csvReader, r.mapper).Collect()
}

func (r *Reader) ReadString(s string) ([]Tower, error) {
	return r.Read(strings.NewReader(s))
}

// ReadFile opens path afresh on every call, so repeated reads see the current file.
func (r *Reader) ReadFile(path string) ([]Tower, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperr.NewIOError("open", path, err)
	}
	defer file.Close()

	towers, err := r.Read(file)
	if err != nil {
		return nil, apperr.WithPath(err, path)
	}
	return towers, nil
}

// Read parses a dove.csv tower list from src with the default mapping.
func Read(src io.Reader) ([]Tower, error) {
	r, err := NewReader()
	if err != nil {
		return nil, err
	}
	return r.Read(src)
}

func ReadString(s string) ([]Tower, error) {
	return Read(strings.NewReader(s))
}

func ReadFile(path string) ([]Tower, error) {
	r, err := NewReader()
	if err != nil {
		return nil, err
	}
	return r.ReadFile(path)
}
