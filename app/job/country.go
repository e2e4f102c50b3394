package job

import "strings"

// countryAliases maps the country-code and country-name spellings seen in
// requests and provider payloads to ISO 3166-1 alpha-2 lowercase codes, which
// is what every supported provider expects.
var countryAliases = map[string]string{
	"uk":             "gb",
	"united kingdom": "gb",
	"great britain":  "gb",
	"england":        "gb",
	"usa":            "us",
	"united states":  "us",
	"america":        "us",
	"uae":            "ae",
	"emirates":       "ae",
	"india":          "in",
	"australia":      "au",
	"canada":         "ca",
	"germany":        "de",
	"france":         "fr",
	"singapore":      "sg",
	"south africa":   "za",
	"new zealand":    "nz",
	"netherlands":    "nl",
	"brazil":         "br",
	"poland":         "pl",
}

// NormalizeCountry resolves any supported country spelling ("UK", "GB", "gb",
// "United Kingdom") to a single lowercase alpha-2 code. Unknown two-letter
// inputs pass through lowercased; anything else unresolvable returns "".
func NormalizeCountry(s string) string {
	c := strings.ToLower(strings.TrimSpace(s))
	if c == "" {
		return ""
	}
	if mapped, ok := countryAliases[c]; ok {
		return mapped
	}
	if len(c) == 2 {
		return c
	}
	return ""
}
