package reader

// Record is one data row keyed by header column.
// Row is 1-based over data rows; Line is the source line the row starts on.
type Record struct {
	Row    int
	Line   int
	Values map[string]string
}

type RowReader interface {
	Header() ([]string, error)
	Next() (Record, error)
}

type Reader interface {
	Read() ([]Record, error)
}
