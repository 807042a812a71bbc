// Package region maps ISO 3166-1 alpha-2 country codes to the coarse
// geography buckets used by fruit availability tables.
package region

import "strings"

// Region tags matching the keys of FruitProfile.AvailabilityByRegion.
const (
	Europe       = "europe"
	NorthAmerica = "north_america"
	Asia         = "asia"
	Africa       = "africa"
	SouthAmerica = "south_america"
	Oceania      = "oceania"
	Global       = "global"
)

var regionByCountry = map[string]string{
	"GB": Europe, "FR": Europe, "DE": Europe, "IT": Europe, "ES": Europe,
	"NL": Europe, "BE": Europe, "SE": Europe, "CH": Europe, "NO": Europe,
	"DK": Europe, "IE": Europe, "PL": Europe,

	"US": NorthAmerica, "CA": NorthAmerica, "MX": NorthAmerica,

	"IN": Asia, "CN": Asia, "JP": Asia, "SG": Asia, "TH": Asia, "MY": Asia,
	"ID": Asia, "VN": Asia, "PH": Asia, "PK": Asia, "BD": Asia, "KR": Asia,

	"ZA": Africa, "NG": Africa, "EG": Africa, "MA": Africa, "KE": Africa,

	"BR": SouthAmerica, "AR": SouthAmerica, "CL": SouthAmerica,
	"PE": SouthAmerica, "CO": SouthAmerica,

	"AU": Oceania, "NZ": Oceania, "FJ": Oceania,
}

// Resolve maps a country code to a region tag. Unknown non-empty codes map
// to Global; an empty code resolves to no region at all (empty string).
// Matching is case-insensitive.
func Resolve(countryCode string) string {
	if countryCode == "" {
		return ""
	}
	if r, ok := regionByCountry[strings.ToUpper(countryCode)]; ok {
		return r
	}
	return Global
}
