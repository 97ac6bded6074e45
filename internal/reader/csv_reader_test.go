package reader

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/DjordjeVuckovic/dove-guide/internal/apperr"
	"github.com/DjordjeVuckovic/dove-guide/pkg/apis/datamapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVReader_Read(t *testing.T) {
	csvData := `TowerID,Place,Bells
1,St Mary,6
2,"Kirkby, All Saints",8`

	reader := NewCSVReader(strings.NewReader(csvData))

	header, err := reader.Header()
	require.NoError(t, err)
	assert.Equal(t, []string{"TowerID", "Place", "Bells"}, header)

	records, err := reader.Read()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{
		Row:    1,
		Line:   2,
		Values: map[string]string{"TowerID": "1", "Place": "St Mary", "Bells": "6"},
	}, records[0])
	assert.Equal(t, Record{
		Row:    2,
		Line:   3,
		Values: map[string]string{"TowerID": "2", "Place": "Kirkby, All Saints", "Bells": "8"},
	}, records[1])
}

func TestCSVReader_LineNumbersWithEmbeddedNewline(t *testing.T) {
	csvData := "Place,Bells\r\n\"Upper\nLower\",6\r\nHigh,8\r\n"

	records, err := NewCSVReader(strings.NewReader(csvData)).Read()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Upper\nLower", records[0].Values["Place"])
	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, 2, records[1].Row)
	assert.Equal(t, 4, records[1].Line)
}

func TestCSVReader_HeaderOnly(t *testing.T) {
	records, err := NewCSVReader(strings.NewReader("TowerID,Place\n")).Read()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCSVReader_EmptyInput(t *testing.T) {
	for name, input := range map[string]string{
		"zero bytes": "",
		"bom only":   "\ufeff",
		"blank":      "\n\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewCSVReader(strings.NewReader(input)).Read()

			var pe *apperr.ParseError
			require.ErrorAs(t, err, &pe)
			assert.ErrorIs(t, err, apperr.ErrEmptyInput)
		})
	}
}

func TestCSVReader_StripsBOM(t *testing.T) {
	header, err := NewCSVReader(strings.NewReader("\ufeffTowerID,Place\n1,x\n")).Header()
	require.NoError(t, err)
	assert.Equal(t, "TowerID", header[0])
}

func TestCSVReader_MalformedRows(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantRow  int
		wantLine int
	}{
		{
			name:     "too many fields",
			input:    "a,b\n1,2\n1,2,3\n",
			wantErr:  csv.ErrFieldCount,
			wantRow:  2,
			wantLine: 3,
		},
		{
			name:     "too few fields",
			input:    "a,b\n1\n",
			wantErr:  csv.ErrFieldCount,
			wantRow:  1,
			wantLine: 2,
		},
		{
			name:     "bare quote",
			input:    "a,b\n1,x\"y\n",
			wantErr:  csv.ErrBareQuote,
			wantRow:  1,
			wantLine: 2,
		},
		{
			name:     "invalid utf-8",
			input:    "a,b\n1,\xff\n",
			wantErr:  apperr.ErrInvalidEncoding,
			wantRow:  1,
			wantLine: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := NewCSVReader(strings.NewReader(tt.input)).Read()
			assert.Nil(t, records)

			var pe *apperr.ParseError
			require.ErrorAs(t, err, &pe)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantRow, pe.Row)
			assert.Equal(t, tt.wantLine, pe.Line)
		})
	}
}

func TestCSVReader_InvalidHeader(t *testing.T) {
	_, err := NewCSVReader(strings.NewReader("a,b,a\n1,2,3\n")).Header()

	var pe *apperr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, apperr.ErrDuplicateColumn)
	assert.Equal(t, "a", pe.Column)

	_, err = NewCSVReader(strings.NewReader("a,\xfe\n")).Header()
	assert.ErrorIs(t, err, apperr.ErrInvalidEncoding)
}

func TestCSVReader_Windows1252(t *testing.T) {
	input := "Place,Dedicn\nSt Mary\xe9,S Andr\x92s\n"

	records, err := NewCSVReader(strings.NewReader(input), WithEncoding(datamapping.EncodingWindows1252)).Read()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "St Maryé", records[0].Values["Place"])
	assert.Equal(t, "S Andr’s", records[0].Values["Dedicn"])
}

func TestCSVReader_Latin1(t *testing.T) {
	records, err := NewCSVReader(strings.NewReader("Place\nPontrh\xfdd\n"), WithEncoding(datamapping.EncodingLatin1)).Read()
	require.NoError(t, err)
	assert.Equal(t, "Pontrhýd", records[0].Values["Place"])
}

func TestCSVReader_Semicolon(t *testing.T) {
	records, err := NewCSVReader(strings.NewReader("a;b\n1;2\n"), WithComma(';')).Read()
	require.NoError(t, err)
	assert.Equal(t, "2", records[0].Values["b"])
}

func TestCSVReader_UnknownEncoding(t *testing.T) {
	_, err := NewCSVReader(strings.NewReader("a\n"), WithEncoding("ebcdic")).Header()

	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestCSVReader_IOFailure(t *testing.T) {
	diskErr := errors.New("disk gone")
	src := io.MultiReader(strings.NewReader("a,b\n1,2\n"), iotest.ErrReader(diskErr))

	records, err := NewCSVReader(src).Read()
	assert.Nil(t, records)

	var ioe *apperr.IOError
	require.ErrorAs(t, err, &ioe)
	assert.ErrorIs(t, err, diskErr)

	var pe *apperr.ParseError
	assert.False(t, errors.As(err, &pe))
}

func TestCSVReader_IOFailureBeforeHeader(t *testing.T) {
	_, err := NewCSVReader(iotest.ErrReader(io.ErrUnexpectedEOF)).Header()

	var ioe *apperr.IOError
	require.ErrorAs(t, err, &ioe)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
