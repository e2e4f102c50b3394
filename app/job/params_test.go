package job

import (
	"testing"
)

func TestSearchParams_Normalize(t *testing.T) {
	p := NewSearchParams()
	p.Query = "  Software   Developer "
	p.Location = "BANGALORE"
	p.Country = "UK"
	p.Page = 0
	p.Limit = 500

	p.Normalize(200)

	if p.Query != "software developer" {
		t.Errorf("Expected normalized query, got %q", p.Query)
	}
	if p.Location != "bangalore" {
		t.Errorf("Expected normalized location, got %q", p.Location)
	}
	if p.Country != "gb" {
		t.Errorf("Expected country gb, got %q", p.Country)
	}
	if p.Page != 1 {
		t.Errorf("Expected page clamped to 1, got %d", p.Page)
	}
	if p.Limit != 200 {
		t.Errorf("Expected limit clamped to 200, got %d", p.Limit)
	}
}

func TestSearchParams_NormalizeDefaultsLimit(t *testing.T) {
	p := NewSearchParams()
	p.Limit = -3
	p.Normalize(200)

	if p.Limit != DefaultLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
}

func TestSearchParams_NormalizeRaisesTinyLimit(t *testing.T) {
	p := NewSearchParams()
	p.Limit = 3
	p.Normalize(200)

	if p.Limit != MinLimit {
		t.Errorf("Expected limit raised to %d, got %d", MinLimit, p.Limit)
	}
}

func TestSearchParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SearchParams)
		wantErr bool
	}{
		{"defaults valid", func(p *SearchParams) {}, false},
		{"negative salary", func(p *SearchParams) { p.SalaryMin = -1 }, true},
		{"inverted salary range", func(p *SearchParams) { p.SalaryMin = 90000; p.SalaryMax = 50000 }, true},
		{"open-ended salary min", func(p *SearchParams) { p.SalaryMin = 50000 }, false},
		{"all sources disabled", func(p *SearchParams) {
			p.IncludeDatabase = false
			p.IncludeExternal = false
			p.IncludeSample = false
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSearchParams()
			tt.mutate(&p)
			p.Normalize(200)

			err := p.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
