package dove

import "net/url"

// Tower is one row of the Dove's Guide tower list. Strictly it describes a ring
// of bells: a building holding two rings appears twice, sharing TowerBaseID.
type Tower struct {
	// ID is the Dove tower ID; stable across Dove's Guide updates.
	ID          int
	TowerBaseID int
	// Deprecated: DoveID is the retired text identifier. Use ID.
	DoveID string

	RingType RingType
	Bells    int
	Weight   Weight
	Note     *Note
	// Frequency of the tenor in Hz.
	Frequency *float64
	Semitones []string
	Details   Details

	Unringable  bool
	GroundFloor bool
	Toilet      bool
	Simulator   bool
	App         bool

	Affiliations []Affiliation
	Practice     string
	ExtraInfo    []string
	WebPage      *url.URL

	Place           string
	Place2          string
	PlaceCountyList string
	Dedication      string
	AltName         string
	Diocese         string
	Location        Location

	OverhaulYear *int
	Contractor   string
	TuneYear     *int

	BuildingID  *int
	ListedGrade string
	ChurchCare  *int
}

type Location struct {
	County      string
	Country     string
	ISO3166Code string
	// GridRef is the Ordnance Survey national grid reference.
	GridRef  string
	Postcode string

	Lat        *float64
	Long       *float64
	SatNavLat  *float64
	SatNavLong *float64
}

// HasCoordinates reports whether both latitude and longitude are known.
func (l Location) HasCoordinates() bool {
	return l.Lat != nil && l.Long != nil
}

// Name is the usual "Place, Dedication" label of a tower.
func (t Tower) Name() string {
	switch {
	case t.Dedication == "":
		return t.Place
	case t.Place == "":
		return t.Dedication
	default:
		return t.Place + ", " + t.Dedication
	}
}

type RingType string

const (
	RingTypeFullCircle RingType = "Full circle ring"
	RingTypeCarillon   RingType = "Carillon"
)

// Details is the Dove "Details" marker, either P or C.
type Details string

const (
	DetailsP Details = "P"
	DetailsC Details = "C"
)
