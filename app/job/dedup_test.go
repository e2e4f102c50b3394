package job

import (
	"testing"
)

func TestDeduper_NoDuplicates(t *testing.T) {
	deduper := NewDeduper()

	jobs := []Job{
		{Title: "Backend Engineer", Company: "Acme", Location: "Pune"},
		{Title: "Frontend Engineer", Company: "Acme", Location: "Pune"},
		{Title: "Data Engineer", Company: "Nexora", Location: "Mumbai"},
	}

	survivors, dupes := deduper.Run(jobs)

	if len(survivors) != 3 {
		t.Errorf("Expected 3 survivors, got %d", len(survivors))
	}
	if dupes != 0 {
		t.Errorf("Expected 0 duplicates, got %d", dupes)
	}
}

func TestDeduper_CollapsesEqualFingerprints(t *testing.T) {
	deduper := NewDeduper()

	jobs := []Job{
		{Source: "adzuna", SourceID: "1", Title: "DevOps Engineer", Company: "Acme", Location: "London"},
		{Source: "jsearch", SourceID: "x", Title: "devops engineer", Company: "ACME", Location: "london"},
	}

	survivors, dupes := deduper.Run(jobs)

	if len(survivors) != 1 {
		t.Fatalf("Expected 1 survivor, got %d", len(survivors))
	}
	if dupes != 1 {
		t.Errorf("Expected 1 duplicate, got %d", dupes)
	}
}

func TestDeduper_AtMostOnePerFingerprint(t *testing.T) {
	deduper := NewDeduper()

	jobs := []Job{
		{Title: "QA Engineer", Company: "Acme", Location: "Delhi"},
		{Title: "QA Engineer", Company: "Acme", Location: "Delhi"},
		{Title: "QA Engineer", Company: "Acme", Location: "Delhi"},
		{Title: "SRE", Company: "Acme", Location: "Delhi"},
	}

	survivors, dupes := deduper.Run(jobs)

	seen := make(map[string]int)
	for _, s := range survivors {
		seen[Fingerprint(s)]++
	}
	for fp, n := range seen {
		if n > 1 {
			t.Errorf("Fingerprint %q appears %d times in output", fp, n)
		}
	}
	if len(survivors) != 2 || dupes != 2 {
		t.Errorf("Expected 2 survivors and 2 duplicates, got %d and %d", len(survivors), dupes)
	}
}

func TestDeduper_MoreCompleteRecordWins(t *testing.T) {
	deduper := NewDeduper()

	sparse := Job{Source: "jsearch", SourceID: "a",
		Title: "ML Engineer", Company: "Nexora", Location: "Berlin"}
	rich := Job{Source: "adzuna", SourceID: "b",
		Title: "ML Engineer", Company: "Nexora", Location: "Berlin",
		Salary:      &Salary{Min: 70000, Max: 90000, Currency: "EUR"},
		Description: "Long and detailed description of the role.",
		ApplyURL:    "https://example.com/apply"}

	survivors, _ := deduper.Run([]Job{sparse, rich})

	if len(survivors) != 1 {
		t.Fatalf("Expected 1 survivor, got %d", len(survivors))
	}
	if survivors[0].Salary == nil {
		t.Errorf("Expected the record with salary data to survive")
	}
}

func TestDeduper_PersistedPreferredOnTie(t *testing.T) {
	deduper := NewDeduper()

	persisted := Job{ID: "uuid-1", Source: "adzuna", SourceID: "1",
		Title: "Platform Engineer", Company: "Acme", Location: "Austin",
		Description: "Same description."}
	fresh := Job{Source: "jsearch", SourceID: "2",
		Title: "Platform Engineer", Company: "Acme", Location: "Austin",
		Description: "Same description."}

	// Persisted record seeded first, as the orchestrator does.
	survivors, dupes := deduper.Run([]Job{persisted, fresh})
	if len(survivors) != 1 || dupes != 1 {
		t.Fatalf("Expected 1 survivor and 1 duplicate, got %d and %d", len(survivors), dupes)
	}
	if survivors[0].ID != "uuid-1" {
		t.Errorf("Expected the persisted record to survive the tie")
	}

	// Order reversed: the persisted record must still win.
	survivors, _ = deduper.Run([]Job{fresh, persisted})
	if survivors[0].ID != "uuid-1" {
		t.Errorf("Expected the persisted record to survive regardless of order")
	}
}

func TestDeduper_LongerDescriptionBreaksCompletenessTie(t *testing.T) {
	deduper := NewDeduper()

	short := Job{Source: "adzuna", SourceID: "1",
		Title: "Designer", Company: "PixelForge", Location: "Remote",
		Description: "Short."}
	long := Job{Source: "jooble", SourceID: "2",
		Title: "Designer", Company: "PixelForge", Location: "Remote",
		Description: "A considerably longer description with actual detail about the role."}

	survivors, _ := deduper.Run([]Job{short, long})
	if survivors[0].Source != "jooble" {
		t.Errorf("Expected the longer description to win, survivor from %q", survivors[0].Source)
	}
}

func TestDeduper_EmptyInput(t *testing.T) {
	deduper := NewDeduper()

	survivors, dupes := deduper.Run(nil)
	if survivors != nil || dupes != 0 {
		t.Errorf("Expected empty output for empty input")
	}
}
