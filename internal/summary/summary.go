package summary

import (
	"cmp"
	"slices"

	"github.com/DjordjeVuckovic/dove-guide/pkg/dove"
)

type Count struct {
	Key   string
	Count int
}

type Summary struct {
	Dataset     string
	Towers      int
	Buildings   int
	Bells       int
	Unringable  int
	GroundFloor int
	Simulators  int
	Carillons   int
	ByBells     map[int]int
	ByCountry   []Count
	Heaviest    *dove.Tower
}

// Summarize aggregates a tower list. Buildings counts distinct TowerBase IDs.
func Summarize(dataset string, towers []dove.Tower) *Summary {
	s := &Summary{
		Dataset: dataset,
		Towers:  len(towers),
		ByBells: make(map[int]int),
	}

	buildings := make(map[int]struct{}, len(towers))
	countries := make(map[string]int)
	for i := range towers {
		t := &towers[i]

		buildings[t.TowerBaseID] = struct{}{}
		s.Bells += t.Bells
		s.ByBells[t.Bells]++

		country := t.Location.Country
		if country == "" {
			country = "Unknown"
		}
		countries[country]++

		if t.Unringable {
			s.Unringable++
		}
		if t.GroundFloor {
			s.GroundFloor++
		}
		if t.Simulator {
			s.Simulators++
		}
		if t.RingType == dove.RingTypeCarillon {
			s.Carillons++
		}
		if s.Heaviest == nil || t.Weight.Lbs > s.Heaviest.Weight.Lbs {
			s.Heaviest = t
		}
	}
	s.Buildings = len(buildings)

	for country, n := range countries {
		s.ByCountry = append(s.ByCountry, Count{Key: country, Count: n})
	}
	slices.SortFunc(s.ByCountry, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})

	return s
}

// BellCounts returns the ByBells keys in ascending order.
func (s *Summary) BellCounts() []int {
	keys := make([]int, 0, len(s.ByBells))
	for k := range s.ByBells {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
