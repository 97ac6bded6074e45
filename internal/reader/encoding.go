package reader

import (
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/dove-guide/internal/apperr"
	"github.com/DjordjeVuckovic/dove-guide/pkg/apis/datamapping"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newDecodingReader converts r to UTF-8. UTF-8 input keeps invalid bytes so
// they can be reported per row; a leading UTF-8 or UTF-16 BOM is honoured.
func newDecodingReader(r io.Reader, encoding string) (io.Reader, error) {
	switch encoding {
	case "", datamapping.EncodingUTF8:
		return transform.NewReader(r, unicode.BOMOverride(transform.Nop)), nil
	case datamapping.EncodingWindows1252:
		return charmap.Windows1252.NewDecoder().Reader(r), nil
	case datamapping.EncodingLatin1:
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	default:
		return nil, apperr.NewValidation(fmt.Sprintf("unsupported encoding %q", encoding))
	}
}
