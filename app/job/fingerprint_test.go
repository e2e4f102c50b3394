package job

import (
	"testing"
)

func TestFingerprint_Consistency(t *testing.T) {
	a := Job{Title: "Software Developer", Company: "Acme Corp", Location: "Bangalore"}
	b := Job{Title: "  software developer ", Company: "ACME CORP", Location: "bangalore"}

	if Fingerprint(a) != Fingerprint(b) {
		t.Errorf("Expected equal fingerprints for cosmetically different jobs, got %q vs %q",
			Fingerprint(a), Fingerprint(b))
	}
}

func TestFingerprint_CrossSourceCollision(t *testing.T) {
	// The same posting reported by two providers must collide, regardless of
	// their differing source identities.
	db := Job{ID: "uuid-1", Source: "adzuna", SourceID: "111",
		Title: "Backend Engineer", Company: "Nexora", Location: "London"}
	ext := Job{Source: "jsearch", SourceID: "js-999",
		Title: "Backend Engineer", Company: "Nexora", Location: "London"}

	if Fingerprint(db) != Fingerprint(ext) {
		t.Errorf("Expected cross-source duplicates to share a fingerprint")
	}
}

func TestFingerprint_WhitespaceCollapse(t *testing.T) {
	a := Job{Title: "Data\tScientist", Company: "Blue  Orbit", Location: "New   York"}
	b := Job{Title: "Data Scientist", Company: "Blue Orbit", Location: "New York"}

	if Fingerprint(a) != Fingerprint(b) {
		t.Errorf("Expected collapsed whitespace to produce equal fingerprints")
	}
}

func TestFingerprint_FallsBackToSourceIdentity(t *testing.T) {
	sparse := Job{Source: "jooble", SourceID: "42"}

	fp := Fingerprint(sparse)
	if fp != "jooble|42" {
		t.Errorf("Expected source identity fallback, got %q", fp)
	}
}

func TestFingerprint_DifferentJobsDiverge(t *testing.T) {
	a := Job{Title: "Frontend Developer", Company: "Acme", Location: "Pune"}
	b := Job{Title: "Backend Developer", Company: "Acme", Location: "Pune"}

	if Fingerprint(a) == Fingerprint(b) {
		t.Errorf("Expected different titles to produce different fingerprints")
	}
}

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"UK", "gb"},
		{"GB", "gb"},
		{"gb", "gb"},
		{"United Kingdom", "gb"},
		{"USA", "us"},
		{"us", "us"},
		{"India", "in"},
		{"IN", "in"},
		{"  in  ", "in"},
		{"de", "de"},
		{"", ""},
		{"atlantis", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeCountry(tt.input); got != tt.expected {
				t.Errorf("NormalizeCountry(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
