package job

import (
	"encoding/json"
	"time"
)

// Well-known source tags. External providers use their registry name
// ("adzuna", "jsearch", "jooble") as the source tag.
const (
	SourceManual = "manual"
	SourceSample = "sample"
)

type Salary struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// Job is the canonical listing representation, independent of the source it
// was fetched from. (Source, SourceID) is the stable identity; the persistence
// layer enforces uniqueness on that pair.
type Job struct {
	ID              string          `json:"id,omitempty"` // database UUID, empty until persisted
	Source          string          `json:"source"`
	SourceID        string          `json:"sourceId"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	Country         string          `json:"country"`
	Description     string          `json:"description"`
	Salary          *Salary         `json:"salary,omitempty"`
	JobType         string          `json:"jobType"` // full-time, part-time, contract, internship
	ExperienceLevel string          `json:"experienceLevel"`
	Sector          string          `json:"sector,omitempty"`
	IsRemote        bool            `json:"isRemote"`
	IsHybrid        bool            `json:"isHybrid"`
	Skills          []string        `json:"skills,omitempty"`
	PostedAt        time.Time       `json:"postedAt"`
	ApplyURL        string          `json:"applyUrl"`
	IsActive        bool            `json:"isActive"`
	Raw             json.RawMessage `json:"-"` // original provider payload, kept for audit
	CreatedAt       time.Time       `json:"-"`
	UpdatedAt       time.Time       `json:"-"`
}

// Persisted reports whether the record came from the database or was entered
// manually, as opposed to being freshly fetched from an external provider.
func (j Job) Persisted() bool {
	return j.ID != "" || j.Source == SourceManual
}

type SourceCounts struct {
	Database int `json:"database"`
	External int `json:"external"`
	Sample   int `json:"sample"`
}

type Metadata struct {
	Cached       bool     `json:"cached"`
	Sectors      []string `json:"sectors"`
	Countries    []string `json:"countries"`
	SearchTimeMS int64    `json:"searchTimeMs"`
}

type SearchResult struct {
	Jobs      []Job        `json:"jobs"`
	TotalJobs int          `json:"totalJobs"`
	HasMore   bool         `json:"hasMore"`
	Sources   SourceCounts `json:"sources"`
	Metadata  Metadata     `json:"metadata"`
}

type ScrapeResult struct {
	Source            string        `json:"source"`
	JobsAdded         int           `json:"jobsAdded"`
	DuplicatesSkipped int           `json:"duplicatesSkipped"`
	Errors            []string      `json:"errors"`
	Duration          time.Duration `json:"duration"`
}
