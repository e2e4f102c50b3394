package job

import (
	"fmt"
	"strings"
)

const (
	DefaultLimit = 20
	MinLimit     = 10
)

// SearchParams carries every input that affects a search result. The cache
// key is derived from the normalized form, so Normalize must run before any
// lookup.
type SearchParams struct {
	Query           string
	Location        string
	Country         string
	JobType         string
	ExperienceLevel string
	IsRemote        *bool
	SalaryMin       float64
	SalaryMax       float64
	Sector          string
	Page            int
	Limit           int

	IncludeDatabase bool
	IncludeExternal bool
	IncludeSample   bool
}

// NewSearchParams returns params with every source enabled and default
// pagination, matching the documented request defaults.
func NewSearchParams() SearchParams {
	return SearchParams{
		Page:            1,
		Limit:           DefaultLimit,
		IncludeDatabase: true,
		IncludeExternal: true,
		IncludeSample:   true,
	}
}

// Normalize trims and lowercases free-text inputs, resolves the country code,
// and clamps the page to >= 1 and the limit to [MinLimit, maxLimit]. It must
// be called before Validate and before deriving a cache key.
func (p *SearchParams) Normalize(maxLimit int) {
	p.Query = strings.Join(strings.Fields(strings.ToLower(p.Query)), " ")
	p.Location = strings.Join(strings.Fields(strings.ToLower(p.Location)), " ")
	p.Country = NormalizeCountry(p.Country)
	p.JobType = strings.ToLower(strings.TrimSpace(p.JobType))
	p.ExperienceLevel = strings.ToLower(strings.TrimSpace(p.ExperienceLevel))
	p.Sector = strings.ToLower(strings.TrimSpace(p.Sector))

	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	} else if p.Limit < MinLimit {
		p.Limit = MinLimit
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}

// Validate rejects parameter combinations that cannot produce a meaningful
// result. Called after Normalize.
func (p SearchParams) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", p.Page)
	}
	if p.Limit < 1 {
		return fmt.Errorf("limit must be >= 1, got %d", p.Limit)
	}
	if p.SalaryMin < 0 || p.SalaryMax < 0 {
		return fmt.Errorf("salary bounds must be non-negative")
	}
	if p.SalaryMax > 0 && p.SalaryMin > p.SalaryMax {
		return fmt.Errorf("salary_min %v exceeds salary_max %v", p.SalaryMin, p.SalaryMax)
	}
	if !p.IncludeDatabase && !p.IncludeExternal && !p.IncludeSample {
		return fmt.Errorf("at least one source must be enabled")
	}
	return nil
}
