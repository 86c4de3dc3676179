// Package countrydata holds the static country reference table and the two
// correction tables that patch known disagreements between the offline
// geocoder's naming authority and this table's.
package countrydata

import (
	"strings"

	"github.com/lcalzada-xor/timemap/internal/core/domain"
	"github.com/lcalzada-xor/timemap/internal/core/ports"
)

// alpha3ToAlpha2 patches the geocoder's alpha-3 codes into the alpha-2 codes
// this table is keyed by. Codes missing here pass through unchanged and can
// still be rescued by a name match.
var alpha3ToAlpha2 = map[string]string{
	"USA": "US",
	"GBR": "GB",
	"CAN": "CA",
	"AUS": "AU",
	"DEU": "DE",
	"FRA": "FR",
	"ITA": "IT",
	"ESP": "ES",
	"CHN": "CN",
	"JPN": "JP",
	"KOR": "KR",
	"IND": "IN",
	"BRA": "BR",
	"RUS": "RU",
	"ZAF": "ZA",
	"MEX": "MX",
	"ISR": "IL",
	"EGY": "EG",
	"SAU": "SA",
	"ARE": "AE",
}

// officialToCommon rewrites the statistics service's official country names
// into the common English names the panel displays.
var officialToCommon = map[string]string{
	"United States of America":            "United States",
	"Russian Federation":                  "Russia",
	"Korea, Republic of":                  "South Korea",
	"Korea, Rep.":                         "South Korea",
	"Iran, Islamic Republic of":           "Iran",
	"Iran, Islamic Rep.":                  "Iran",
	"Syrian Arab Republic":                "Syria",
	"Venezuela, Bolivarian Republic of":   "Venezuela",
	"Venezuela, RB":                       "Venezuela",
	"Viet Nam":                            "Vietnam",
	"Lao People's Democratic Republic":    "Laos",
	"Lao PDR":                             "Laos",
	"Congo, Democratic Republic of the":   "DR Congo",
	"Congo, Dem. Rep.":                    "DR Congo",
	"Tanzania, United Republic of":        "Tanzania",
	"Myanmar":                             "Myanmar (Burma)",
	"Brunei Darussalam":                   "Brunei",
	"Czech Republic":                      "Czechia",
	"Egypt, Arab Rep.":                    "Egypt",
	"Turkiye":                             "Turkey",
}

// Directory implements ports.CountryDirectory over the static table in
// table.go. It is immutable after New.
type Directory struct {
	records []domain.CountryRecord
	byA2    map[string]domain.CountryRecord
}

// New builds the directory: flag emoji are derived from the alpha-2 codes and
// the alpha-2 index is prepared for the detail endpoint.
func New() *Directory {
	records := make([]domain.CountryRecord, len(table))
	byA2 := make(map[string]domain.CountryRecord, len(table))
	for i, row := range table {
		rec := domain.CountryRecord{
			Name:       row.name,
			Alpha2:     row.alpha2,
			Alpha3:     row.alpha3,
			Emoji:      FlagEmoji(row.alpha2),
			Population: row.population,
		}
		records[i] = rec
		if _, exists := byA2[rec.Alpha2]; !exists {
			byA2[rec.Alpha2] = rec
		}
	}
	return &Directory{records: records, byA2: byA2}
}

// NormalizeCode applies the alpha-3 override table, passing unknown codes
// through unchanged.
func NormalizeCode(code string) string {
	if a2, ok := alpha3ToAlpha2[strings.ToUpper(code)]; ok {
		return a2
	}
	return code
}

// CorrectName applies the official-name override table, passing unknown names
// through unchanged.
func CorrectName(official string) string {
	if common, ok := officialToCommon[official]; ok {
		return common
	}
	return official
}

// Find runs the decision rule from the click pipeline: normalize the code,
// then scan for a record matching by alpha-2 code OR case-insensitive name.
// The predicates are an OR on purpose: a name match can surface a record even
// when code normalization failed, because the two naming authorities disagree
// on a long tail of territories. First match in table order wins.
func (d *Directory) Find(code, name string) domain.CountryMatch {
	normalized := NormalizeCode(code)
	lowerName := strings.ToLower(name)
	for _, rec := range d.records {
		if rec.Alpha2 == normalized || strings.ToLower(rec.Name) == lowerName {
			return domain.MatchedCountry(rec)
		}
	}
	return domain.NoMatch()
}

// ByAlpha2 returns the record for a canonical alpha-2 code.
func (d *Directory) ByAlpha2(code string) (domain.CountryRecord, bool) {
	rec, ok := d.byA2[strings.ToUpper(code)]
	return rec, ok
}

// FlagEmoji converts an alpha-2 code into its regional-indicator flag.
// Returns "" for anything that is not two ASCII letters.
func FlagEmoji(alpha2 string) string {
	if len(alpha2) != 2 {
		return ""
	}
	upper := strings.ToUpper(alpha2)
	const base = 0x1F1E6
	var out []rune
	for _, r := range upper {
		if r < 'A' || r > 'Z' {
			return ""
		}
		out = append(out, base+(r-'A'))
	}
	return string(out)
}

var _ ports.CountryDirectory = (*Directory)(nil)
