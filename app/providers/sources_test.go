package providers

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSourcesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write sources file: %v", err)
	}
	return path
}

func TestLoadSources(t *testing.T) {
	path := writeSourcesFile(t, `
providers:
  adzuna:
    enabled: true
  jooble:
    enabled: false
scrape:
  max_jobs_per_source: 50
  queries:
    - query: software engineer
      countries: [IN, US]
    - query: data analyst
      countries: [UK]
`)

	sc, err := LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources failed: %v", err)
	}

	if !sc.Enabled("adzuna") {
		t.Errorf("Expected adzuna enabled")
	}
	if sc.Enabled("jooble") {
		t.Errorf("Expected jooble disabled")
	}
	if !sc.Enabled("jsearch") {
		t.Errorf("Expected absent provider to default to enabled")
	}

	if sc.Scrape.MaxJobsPerSource != 50 {
		t.Errorf("Expected max_jobs_per_source 50, got %d", sc.Scrape.MaxJobsPerSource)
	}
	if len(sc.Scrape.Queries) != 2 {
		t.Fatalf("Expected 2 scrape queries, got %d", len(sc.Scrape.Queries))
	}
	if sc.Scrape.Queries[0].Query != "software engineer" {
		t.Errorf("Unexpected first query: %q", sc.Scrape.Queries[0].Query)
	}
}

func TestLoadSources_MissingFileDefaults(t *testing.T) {
	sc, err := LoadSources(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Expected missing file to yield defaults, got %v", err)
	}

	for _, name := range []string{"adzuna", "jsearch", "jooble"} {
		if !sc.Enabled(name) {
			t.Errorf("Expected %s enabled by default", name)
		}
	}
	if len(sc.Scrape.Queries) != 0 {
		t.Errorf("Expected no default scrape targets")
	}
}

func TestLoadSources_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown provider", "providers:\n  linkeden:\n    enabled: true\n"},
		{"empty query text", "scrape:\n  queries:\n    - query: \"\"\n      countries: [in]\n"},
		{"unresolvable country", "scrape:\n  queries:\n    - query: devops\n      countries: [atlantis]\n"},
		{"malformed yaml", "providers: [not, a, map]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSourcesFile(t, tt.content)
			if _, err := LoadSources(path); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}
