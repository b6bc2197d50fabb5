package propgen

import "strings"

// oemKeywords identifies packaged OEM platforms that warrant a dedicated
// product overview section in the proposal.
var oemKeywords = []string{
	"salesforce",
	"outsystems",
	"sap",
	"oracle",
	"microsoft dynamics",
	"servicenow",
	"workday",
}

// IsOEMTechnology reports whether the technology names a packaged OEM
// platform. Matching is a case-insensitive substring test, so a focus like
// "Salesforce Sales Cloud" qualifies.
func IsOEMTechnology(technology string) bool {
	name := strings.ToLower(technology)
	for _, keyword := range oemKeywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}
