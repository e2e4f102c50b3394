package api

import (
	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
)

// searchRequest binds the public search query string. Boolean-ish and numeric
// fields are strings here so absent, empty, and invalid values can be told
// apart during validation.
type searchRequest struct {
	Query           string  `form:"query"`
	Location        string  `form:"location"`
	Country         string  `form:"country"`
	JobType         string  `form:"jobType"`
	ExperienceLevel string  `form:"experienceLevel"`
	IsRemote        *bool   `form:"isRemote"`
	SalaryMin       float64 `form:"salaryMin"`
	SalaryMax       float64 `form:"salaryMax"`
	Sector          string  `form:"sector"`
	Page            int     `form:"page"`
	Limit           int     `form:"limit"`

	IncludeDatabase *bool `form:"includeDatabase"`
	IncludeExternal *bool `form:"includeExternal"`
	IncludeSample   *bool `form:"includeSample"`
}

type pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalJobs   int  `json:"totalJobs"`
	HasMore     bool `json:"hasMore"`
	NextPage    *int `json:"nextPage"`
	JobsPerPage int  `json:"jobsPerPage"`
	TotalPages  int  `json:"totalPages"`
}

type searchResponse struct {
	Success    bool             `json:"success"`
	Jobs       []job.Job        `json:"jobs"`
	Pagination pagination       `json:"pagination"`
	Sources    job.SourceCounts `json:"sources"`
	Metadata   job.Metadata     `json:"metadata"`
	Error      string           `json:"error,omitempty"`
}

type scrapeRequest struct {
	Query            string   `json:"query"`
	Countries        []string `json:"countries"`
	MaxJobsPerSource int      `json:"maxJobsPerSource"`
	Sources          []string `json:"sources"`
}

type scrapeResponse struct {
	Success         bool               `json:"success"`
	TotalJobs       int                `json:"totalJobs"`
	TotalDuplicates int                `json:"totalDuplicates"`
	TotalErrors     int                `json:"totalErrors"`
	Duration        string             `json:"duration"`
	Sources         []job.ScrapeResult `json:"sources"`
}
