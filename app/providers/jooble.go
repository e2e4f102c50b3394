package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
)

const joobleDefaultBaseURL = "https://jooble.org/api"

// Jooble fetches listings from the Jooble POST API. The API key is a URL
// path segment and search parameters travel in a JSON body. Jooble reports
// salary as free text, which does not map onto the structured salary range,
// so converted records carry no salary.
type Jooble struct {
	apiKey  string
	baseURL string
	client  *Client
}

func NewJooble(apiKey string, client *Client) *Jooble {
	return &Jooble{
		apiKey:  apiKey,
		baseURL: joobleDefaultBaseURL,
		client:  client,
	}
}

func (p *Jooble) Name() string { return "jooble" }

type joobleRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
	Page     string `json:"page"`
}

type joobleResponse struct {
	TotalCount int               `json:"totalCount"`
	Jobs       []json.RawMessage `json:"jobs"`
}

type joobleResult struct {
	ID       json.Number `json:"id"`
	Title    string      `json:"title"`
	Location string      `json:"location"`
	Snippet  string      `json:"snippet"`
	Salary   string      `json:"salary"`
	Type     string      `json:"type"`
	Link     string      `json:"link"`
	Company  string      `json:"company"`
	Updated  string      `json:"updated"`
}

func (p *Jooble) Fetch(ctx context.Context, query, country string, page int) ([]job.Job, error) {
	if p.apiKey == "" {
		slog.Debug("Jooble API key not set, skipping", "query", query)
		return nil, nil
	}

	cc := job.NormalizeCountry(country)
	if page < 1 {
		page = 1
	}

	body := joobleRequest{
		Keywords: query,
		Location: joobleLocation(cc),
		Page:     strconv.Itoa(page),
	}

	var resp joobleResponse
	if err := p.client.PostJSON(ctx, p.baseURL+"/"+p.apiKey, body, nil, &resp); err != nil {
		return nil, fmt.Errorf("jooble: %w", err)
	}

	jobs := make([]job.Job, 0, len(resp.Jobs))
	for _, raw := range resp.Jobs {
		var r joobleResult
		if err := json.Unmarshal(raw, &r); err != nil {
			slog.Warn("Skipping malformed Jooble result", "error", err)
			continue
		}
		if r.ID.String() == "" {
			continue
		}
		jobs = append(jobs, p.convert(r, raw, cc))
	}

	return jobs, nil
}

func (p *Jooble) convert(r joobleResult, raw json.RawMessage, country string) job.Job {
	j := job.Job{
		Source:      p.Name(),
		SourceID:    r.ID.String(),
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Country:     country,
		Description: r.Snippet,
		JobType:     joobleJobType(r.Type),
		ApplyURL:    r.Link,
		IsRemote:    looksRemote(r.Title, r.Location, r.Snippet),
		IsActive:    true,
		Raw:         raw,
	}

	if t, err := time.Parse(time.RFC3339, r.Updated); err == nil {
		j.PostedAt = t
	}

	return j
}

// joobleLocation maps a country code to the location string Jooble expects;
// Jooble has no separate country parameter.
func joobleLocation(country string) string {
	switch country {
	case "in":
		return "India"
	case "us":
		return "USA"
	case "gb":
		return "UK"
	case "ae":
		return "UAE"
	default:
		return ""
	}
}

func joobleJobType(t string) string {
	switch strings.ToLower(t) {
	case "full-time", "fulltime":
		return "full-time"
	case "part-time", "parttime":
		return "part-time"
	case "temporary", "contract":
		return "contract"
	case "internship":
		return "internship"
	default:
		return ""
	}
}
