package job

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fingerprint derives the duplicate-detection key for a listing. It is built
// from the normalized title, company and location so the same posting
// collapses to one record no matter which provider reported it. When those
// fields are absent the (source, sourceId) identity is used instead, so a
// sparse record can still be deduplicated within its own source.
//
// The fingerprint is transient: it is never persisted as identity.
func Fingerprint(j Job) string {
	title := normalizeText(j.Title)
	company := normalizeText(j.Company)

	if title == "" && company == "" && j.Source != "" && j.SourceID != "" {
		return strings.ToLower(j.Source) + "|" + strings.ToLower(j.SourceID)
	}

	return title + "|" + company + "|" + normalizeText(j.Location)
}

// normalizeText folds unicode compatibility forms, lowercases, and collapses
// runs of whitespace so cosmetic differences between providers do not defeat
// duplicate detection.
func normalizeText(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
