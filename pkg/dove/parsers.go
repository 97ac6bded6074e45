package dove

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/dove-guide/internal/reader"
	"github.com/DjordjeVuckovic/dove-guide/pkg/stringsutil"
)

// Parsers returns a fresh registry with the built-in parsers plus the tower
// specific ones: ringType, details, note, weight and affiliations.
func Parsers() *reader.Parsers {
	return reader.DefaultParsers().
		Register("ringType", reader.ParserFunc(parseRingType)).
		Register("details", reader.ParserFunc(parseDetails)).
		Register("note", reader.ParserFunc(parseNote)).
		Register("weight", reader.ParserFunc(parseWeight)).
		Register("affiliations", reader.ParserFunc(parseAffiliations))
}

func parseRingType(value string, _ reader.Options) (RingType, error) {
	switch rt := RingType(strings.TrimSpace(value)); rt {
	case RingTypeFullCircle, RingTypeCarillon:
		return rt, nil
	default:
		return "", fmt.Errorf("unknown ring type %q", value)
	}
}

func parseDetails(value string, _ reader.Options) (Details, error) {
	switch d := Details(strings.TrimSpace(value)); d {
	case DetailsP, DetailsC:
		return d, nil
	default:
		return "", fmt.Errorf("unknown details marker %q", value)
	}
}

func parseNote(value string, _ reader.Options) (Note, error) {
	return ParseNote(value)
}

// parseWeight reads the Wt column, which Dove's Guide gives in pounds.
func parseWeight(value string, _ reader.Options) (Weight, error) {
	lbs, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return Weight{}, fmt.Errorf("failed to parse weight value '%s': %w", value, err)
	}
	if lbs < 0 {
		return Weight{}, fmt.Errorf("negative weight %v", lbs)
	}
	return Weight{Lbs: lbs}, nil
}

func parseAffiliations(value string, opts reader.Options) ([]Affiliation, error) {
	sep := opts.Separator
	if sep == "" {
		sep = ";"
	}
	codes := stringsutil.Dedupe(stringsutil.SplitTrimmed(value, sep))
	if len(codes) == 0 {
		return nil, nil
	}
	affiliations := make([]Affiliation, len(codes))
	for i, c := range codes {
		affiliations[i] = Affiliation(c)
	}
	return affiliations, nil
}
