package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
)

const (
	jsearchDefaultBaseURL = "https://jsearch.p.rapidapi.com"
	jsearchHost           = "jsearch.p.rapidapi.com"
)

// JSearch fetches listings from the JSearch API on RapidAPI. The free-text
// query and location travel together in the q parameter; the country is a
// separate ISO code filter.
type JSearch struct {
	apiKey  string
	baseURL string
	client  *Client
}

func NewJSearch(apiKey string, client *Client) *JSearch {
	return &JSearch{
		apiKey:  apiKey,
		baseURL: jsearchDefaultBaseURL,
		client:  client,
	}
}

func (p *JSearch) Name() string { return "jsearch" }

type jsearchResponse struct {
	Status string            `json:"status"`
	Data   []json.RawMessage `json:"data"`
}

type jsearchResult struct {
	JobID          string   `json:"job_id"`
	Title          string   `json:"job_title"`
	Employer       string   `json:"employer_name"`
	City           string   `json:"job_city"`
	CountryCode    string   `json:"job_country"`
	Description    string   `json:"job_description"`
	MinSalary      float64  `json:"job_min_salary"`
	MaxSalary      float64  `json:"job_max_salary"`
	SalaryCurrency string   `json:"job_salary_currency"`
	EmploymentType string   `json:"job_employment_type"`
	IsRemote       bool     `json:"job_is_remote"`
	PostedAt       string   `json:"job_posted_at_datetime_utc"`
	ApplyLink      string   `json:"job_apply_link"`
	RequiredSkills []string `json:"job_required_skills"`
}

func (p *JSearch) Fetch(ctx context.Context, query, country string, page int) ([]job.Job, error) {
	if p.apiKey == "" {
		slog.Debug("JSearch API key not set, skipping", "query", query)
		return nil, nil
	}

	cc := job.NormalizeCountry(country)
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("num_pages", "1")
	if cc != "" {
		params.Set("country", cc)
	}

	endpoint := p.baseURL + "/search?" + params.Encode()
	headers := map[string]string{
		"X-RapidAPI-Key":  p.apiKey,
		"X-RapidAPI-Host": jsearchHost,
	}

	var resp jsearchResponse
	if err := p.client.GetJSON(ctx, endpoint, headers, &resp); err != nil {
		return nil, fmt.Errorf("jsearch: %w", err)
	}

	jobs := make([]job.Job, 0, len(resp.Data))
	for _, raw := range resp.Data {
		var r jsearchResult
		if err := json.Unmarshal(raw, &r); err != nil {
			slog.Warn("Skipping malformed JSearch result", "error", err)
			continue
		}
		if r.JobID == "" {
			continue
		}
		jobs = append(jobs, p.convert(r, raw, cc))
	}

	return jobs, nil
}

func (p *JSearch) convert(r jsearchResult, raw json.RawMessage, country string) job.Job {
	if c := job.NormalizeCountry(r.CountryCode); c != "" {
		country = c
	}

	j := job.Job{
		Source:      p.Name(),
		SourceID:    r.JobID,
		Title:       r.Title,
		Company:     r.Employer,
		Location:    r.City,
		Country:     country,
		Description: r.Description,
		JobType:     jsearchJobType(r.EmploymentType),
		IsRemote:    r.IsRemote,
		Skills:      r.RequiredSkills,
		ApplyURL:    r.ApplyLink,
		IsActive:    true,
		Raw:         raw,
	}

	if r.MinSalary > 0 || r.MaxSalary > 0 {
		currency := r.SalaryCurrency
		if currency == "" {
			currency = currencyForCountry(country)
		}
		j.Salary = &job.Salary{Min: r.MinSalary, Max: r.MaxSalary, Currency: currency}
	}
	if t, err := time.Parse(time.RFC3339, r.PostedAt); err == nil {
		j.PostedAt = t
	}

	return j
}

func jsearchJobType(employmentType string) string {
	switch strings.ToUpper(employmentType) {
	case "FULLTIME":
		return "full-time"
	case "PARTTIME":
		return "part-time"
	case "CONTRACTOR":
		return "contract"
	case "INTERN":
		return "internship"
	default:
		return ""
	}
}
