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
	adzunaDefaultBaseURL = "https://api.adzuna.com/v1/api/jobs"
	adzunaPageSize       = 50
)

// Adzuna fetches listings from the Adzuna public API. The country code is a
// path segment, so every supported country spelling is normalized first.
// Missing credentials make Fetch a logged no-op instead of an error, so a
// partially configured deployment still aggregates its other sources.
type Adzuna struct {
	appID   string
	appKey  string
	baseURL string
	client  *Client
}

func NewAdzuna(appID, appKey string, client *Client) *Adzuna {
	return &Adzuna{
		appID:   appID,
		appKey:  appKey,
		baseURL: adzunaDefaultBaseURL,
		client:  client,
	}
}

func (a *Adzuna) Name() string { return "adzuna" }

type adzunaResponse struct {
	Results []json.RawMessage `json:"results"`
	Count   int               `json:"count"`
}

type adzunaResult struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	SalaryMin    float64 `json:"salary_min"`
	SalaryMax    float64 `json:"salary_max"`
	RedirectURL  string  `json:"redirect_url"`
	Created      string  `json:"created"`
	ContractTime string  `json:"contract_time"`
	Company      struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Category struct {
		Label string `json:"label"`
	} `json:"category"`
}

func (a *Adzuna) Fetch(ctx context.Context, query, country string, page int) ([]job.Job, error) {
	if a.appID == "" || a.appKey == "" {
		slog.Debug("Adzuna credentials not set, skipping", "query", query)
		return nil, nil
	}

	cc := job.NormalizeCountry(country)
	if cc == "" {
		cc = "gb"
	}
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("app_id", a.appID)
	params.Set("app_key", a.appKey)
	params.Set("results_per_page", strconv.Itoa(adzunaPageSize))
	params.Set("what", query)
	params.Set("content-type", "application/json")
	params.Set("sort_by", "date")

	endpoint := fmt.Sprintf("%s/%s/search/%d?%s", a.baseURL, cc, page, params.Encode())

	var resp adzunaResponse
	if err := a.client.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("adzuna: %w", err)
	}

	jobs := make([]job.Job, 0, len(resp.Results))
	for _, raw := range resp.Results {
		var r adzunaResult
		if err := json.Unmarshal(raw, &r); err != nil {
			slog.Warn("Skipping malformed Adzuna result", "error", err)
			continue
		}
		if r.ID == "" {
			continue
		}
		jobs = append(jobs, a.convert(r, raw, cc))
	}

	return jobs, nil
}

func (a *Adzuna) convert(r adzunaResult, raw json.RawMessage, country string) job.Job {
	j := job.Job{
		Source:      a.Name(),
		SourceID:    r.ID,
		Title:       r.Title,
		Company:     r.Company.DisplayName,
		Location:    r.Location.DisplayName,
		Country:     country,
		Description: r.Description,
		Sector:      strings.ToLower(r.Category.Label),
		JobType:     adzunaJobType(r.ContractTime),
		ApplyURL:    r.RedirectURL,
		IsRemote:    looksRemote(r.Title, r.Location.DisplayName, r.Description),
		IsActive:    true,
		Raw:         raw,
	}

	if r.SalaryMin > 0 || r.SalaryMax > 0 {
		j.Salary = &job.Salary{Min: r.SalaryMin, Max: r.SalaryMax, Currency: currencyForCountry(country)}
	}
	if t, err := time.Parse(time.RFC3339, r.Created); err == nil {
		j.PostedAt = t
	}

	return j
}

func adzunaJobType(contractTime string) string {
	switch contractTime {
	case "full_time":
		return "full-time"
	case "part_time":
		return "part-time"
	default:
		return ""
	}
}
