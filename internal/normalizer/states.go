package normalizer

import "strings"

// landlordIndex scores each state's landlord-tenant law on a 0-100 scale.
// Higher means faster evictions, fewer rent rules and lighter STR oversight.
var landlordIndex = map[string]float64{
	"AK": 62, "AL": 82, "AR": 85, "AZ": 78, "CA": 18,
	"CO": 55, "CT": 35, "DC": 12, "DE": 40, "FL": 80,
	"GA": 84, "HI": 30, "IA": 70, "ID": 80, "IL": 35,
	"IN": 82, "KS": 74, "KY": 72, "LA": 70, "MA": 22,
	"MD": 30, "ME": 42, "MI": 52, "MN": 36, "MO": 74,
	"MS": 78, "MT": 66, "NC": 72, "ND": 70, "NE": 70,
	"NH": 60, "NJ": 18, "NM": 50, "NV": 60, "NY": 14,
	"OH": 72, "OK": 80, "OR": 20, "PA": 50, "RI": 38,
	"SC": 76, "SD": 72, "TN": 80, "TX": 86, "UT": 78,
	"VA": 60, "VT": 28, "WA": 26, "WI": 62, "WV": 70,
	"WY": 80,
}

var stateCodes = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"district of columbia": "DC", "washington dc": "DC", "washington d.c.": "DC",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
}

// StateCode resolves a two-letter code or full state name to the upper-case
// code. The second return value is false for anything it does not recognise.
func StateCode(state string) (string, bool) {
	s := strings.ToLower(strings.Join(strings.Fields(state), " "))
	if s == "" {
		return "", false
	}
	if len(s) == 2 {
		code := strings.ToUpper(s)
		_, ok := landlordIndex[code]
		return code, ok
	}
	code, ok := stateCodes[s]
	return code, ok
}

// LandlordFavorability returns the state-level landlord index for a state code or name
func LandlordFavorability(state string) (float64, bool) {
	code, ok := StateCode(state)
	if !ok {
		return 0, false
	}
	v, ok := landlordIndex[code]
	return v, ok
}
