package summary

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(s *Summary, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Dove's Guide: %s ===\n\n", s.Dataset)
	fmt.Fprintf(tw, "Rings\t%d\n", s.Towers)
	fmt.Fprintf(tw, "Buildings\t%d\n", s.Buildings)
	fmt.Fprintf(tw, "Bells\t%d\n", s.Bells)
	fmt.Fprintf(tw, "Unringable\t%d\n", s.Unringable)
	fmt.Fprintf(tw, "Ground floor\t%d\n", s.GroundFloor)
	fmt.Fprintf(tw, "Simulators\t%d\n", s.Simulators)
	fmt.Fprintf(tw, "Carillons\t%d\n", s.Carillons)
	if s.Heaviest != nil {
		fmt.Fprintf(tw, "Heaviest\t%s (%s)\n", s.Heaviest.Name(), s.Heaviest.Weight)
	}

	writeCounts(tw, "Bells", "Rings", bellRows(s))
	writeCounts(tw, "Country", "Rings", s.ByCountry)

	return tw.Flush()
}

func bellRows(s *Summary) []Count {
	rows := make([]Count, 0, len(s.ByBells))
	for _, bells := range s.BellCounts() {
		rows = append(rows, Count{Key: fmt.Sprintf("%d", bells), Count: s.ByBells[bells]})
	}
	return rows
}

func writeCounts(tw *tabwriter.Writer, keyHeader, countHeader string, rows []Count) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, strings.Join([]string{keyHeader, countHeader}, "\t"))
	fmt.Fprintln(tw, strings.Join([]string{"---", "---"}, "\t"))
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\n", r.Key, r.Count)
	}
}
