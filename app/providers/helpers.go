package providers

import "strings"

// looksRemote detects remote roles from providers that have no structured
// remote flag.
func looksRemote(fields ...string) bool {
	for _, f := range fields {
		l := strings.ToLower(f)
		if strings.Contains(l, "remote") || strings.Contains(l, "work from home") {
			return true
		}
	}
	return false
}

func currencyForCountry(country string) string {
	switch country {
	case "in":
		return "INR"
	case "gb":
		return "GBP"
	case "ae":
		return "AED"
	case "au":
		return "AUD"
	case "ca":
		return "CAD"
	case "de", "fr", "nl":
		return "EUR"
	default:
		return "USD"
	}
}
