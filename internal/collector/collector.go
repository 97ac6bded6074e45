package collector

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/dove-guide/internal/apperr"
	"github.com/DjordjeVuckovic/dove-guide/internal/reader"
)

// Collector drains a RowReader through a mapper. A single bad row fails the
// whole collection; no partial result is returned.
type Collector[T any] struct {
	Reader reader.RowReader
	Mapper reader.SchemaMapper[T]
}

func NewCollector[T any](r reader.RowReader, mapper reader.SchemaMapper[T]) *Collector[T] {
	return &Collector[T]{
		Reader: r,
		Mapper: mapper,
	}
}

func (c *Collector[T]) Collect() ([]T, error) {
	header, err := c.Reader.Header()
	if err != nil {
		return nil, err
	}
	if err := c.Mapper.CheckHeader(header); err != nil {
		return nil, err
	}

	unique := c.Mapper.UniqueColumns()
	seen := make(map[string]map[string]int, len(unique))
	for _, col := range unique {
		seen[col] = make(map[string]int)
	}

	results := make([]T, 0)
	for {
		record, err := c.Reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		for _, col := range unique {
			v := strings.TrimSpace(record.Values[col])
			if v == "" {
				continue
			}
			if first, dup := seen[col][v]; dup {
				return nil, apperr.NewParseError(record.Row, record.Line, col, v,
					fmt.Errorf("%w: first seen on row %d", apperr.ErrDuplicateValue, first))
			}
			seen[col][v] = record.Row
		}

		item, err := c.Mapper.Map(record)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	slog.Debug("Collected records", "count", len(results))
	return results, nil
}
