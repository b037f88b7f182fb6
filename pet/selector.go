package pet

import "strings"

// Filter splits the catalog into the selector's two lists: active entries in catalog
// order, and inactive entries whose display name contains query (case-insensitive)
func Filter(catalog *Catalog, active *ActiveSet, query string) (activeEntries, inactiveEntries []CatalogEntry) {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, e := range catalog.Entries() {
		if active.Contains(e.ID) {
			activeEntries = append(activeEntries, e)
			continue
		}
		if q == "" || strings.Contains(strings.ToLower(e.DisplayName), q) {
			inactiveEntries = append(inactiveEntries, e)
		}
	}
	return activeEntries, inactiveEntries
}

var flagCodes = map[string]string{
	"france":    "FR",
	"japan":     "JP",
	"usa":       "US",
	"uk":        "GB",
	"brazil":    "BR",
	"australia": "AU",
	"canada":    "CA",
	"india":     "IN",
	"egypt":     "EG",
	"russia":    "RU",
	"iceland":   "IS",
	"norway":    "NO",
	"spain":     "ES",
	"germany":   "DE",
	"mexico":    "MX",
	"argentina": "AR",
	"china":     "CN",
	"italy":     "IT",
}

// Flag returns the two-letter badge for a country name, "--" when unknown
func Flag(name string) string {
	if code, ok := flagCodes[strings.ToLower(name)]; ok {
		return code
	}
	return "--"
}
