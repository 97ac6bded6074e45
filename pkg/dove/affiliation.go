package dove

// Affiliation is the code of a ringing society a tower belongs to.
type Affiliation string

const (
	AffiliationCambridgeUni  Affiliation = "CUG"
	AffiliationManchesterUni Affiliation = "MUG"
	AffiliationOxfordUni     Affiliation = "OUS"
	AffiliationOxfordDiocese Affiliation = "ODG"
	AffiliationSurrey        Affiliation = "Surr"
)

var affiliationNames = map[Affiliation]string{
	AffiliationCambridgeUni:  "Cambridge University Guild",
	AffiliationManchesterUni: "Manchester University Guild",
	AffiliationOxfordUni:     "Oxford University Society",
	AffiliationOxfordDiocese: "Oxford Diocesan Guild",
	AffiliationSurrey:        "Surrey Association",
}

// Name returns the society's full name, or the code itself when unknown.
func (a Affiliation) Name() string {
	if name, ok := affiliationNames[a]; ok {
		return name
	}
	return string(a)
}

func (a Affiliation) Known() bool {
	_, ok := affiliationNames[a]
	return ok
}
