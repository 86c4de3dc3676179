package domain

// CountryRecord is one row of the static country directory. The directory is
// loaded once at startup and is immutable for the process lifetime.
type CountryRecord struct {
	Name       string `json:"name"` // common English name
	Alpha2     string `json:"alpha2"`
	Alpha3     string `json:"alpha3"`
	Emoji      string `json:"emoji"`
	Population int64  `json:"population,omitempty"` // stale reference figure, display fallback only
}

// ResolvedCountry is the raw answer of the offline reverse-geocoder: the
// dataset's alpha-3 code and display name. Both follow the dataset's own
// naming authority, which is why the directory applies correction tables
// before matching.
type ResolvedCountry struct {
	Code string `json:"code"` // ISO 3166-1 alpha-3
	Name string `json:"name"`
}

// MatchKind tags the outcome of a directory lookup. The directory scan cannot
// produce two first matches (table order breaks ties), so there is no
// "ambiguous" arm.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchFound
)

// CountryMatch is the tagged result of CountryDirectory.Find: either a record
// was matched by code or name, or nothing matched and the caller falls back to
// the resolver's raw name.
type CountryMatch struct {
	Kind   MatchKind     `json:"kind"`
	Record CountryRecord `json:"record,omitempty"`
}

// Matched reports whether the lookup surfaced a record.
func (m CountryMatch) Matched() bool { return m.Kind == MatchFound }

// NoMatch is the empty result.
func NoMatch() CountryMatch { return CountryMatch{Kind: MatchNone} }

// Matched wraps a record into a positive result.
func MatchedCountry(r CountryRecord) CountryMatch {
	return CountryMatch{Kind: MatchFound, Record: r}
}
