package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/cache"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/scraper"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/search"
)

type fakeSearcher struct {
	result *job.SearchResult
	err    error
	params job.SearchParams
}

func (s *fakeSearcher) Run(ctx context.Context, params job.SearchParams) (*job.SearchResult, error) {
	s.params = params
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type fakeScraper struct {
	results []job.ScrapeResult
	counts  map[string]int
}

func (s *fakeScraper) ScrapeAll(ctx context.Context, query string, countries []string, opts scraper.Options) []job.ScrapeResult {
	return s.results
}

func (s *fakeScraper) Stats(ctx context.Context) (map[string]int, error) {
	return s.counts, nil
}

func testServer(searcher SearcherInterface, scr ScraperInterface, apiKey string) http.Handler {
	handler := NewHandler(searcher, scr, cache.NewMemoryCacheWithClock(time.Now), 200, "test")
	return NewServer(handler, apiKey)
}

func doRequest(t *testing.T, srv http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestSearchJobs_Envelope(t *testing.T) {
	searcher := &fakeSearcher{result: &job.SearchResult{
		Jobs: []job.Job{
			{Source: "adzuna", SourceID: "a-1", Title: "Backend Developer"},
		},
		TotalJobs: 45,
		HasMore:   true,
		Sources:   job.SourceCounts{Database: 20, External: 25},
	}}
	srv := testServer(searcher, &fakeScraper{}, "")

	w := doRequest(t, srv, "GET", "/api/jobs/search?query=developer&country=UK&page=2&limit=20", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp searchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Errorf("Expected success=true")
	}
	if resp.Pagination.CurrentPage != 2 || resp.Pagination.TotalJobs != 45 {
		t.Errorf("Unexpected pagination: %+v", resp.Pagination)
	}
	if resp.Pagination.TotalPages != 3 {
		t.Errorf("Expected 3 total pages for 45 jobs at 20 per page, got %d", resp.Pagination.TotalPages)
	}
	if resp.Pagination.NextPage == nil || *resp.Pagination.NextPage != 3 {
		t.Errorf("Expected nextPage=3, got %v", resp.Pagination.NextPage)
	}

	if searcher.params.Country != "gb" {
		t.Errorf("Expected UK to normalize to gb before the search, got %q", searcher.params.Country)
	}
}

func TestSearchJobs_AggregateFailureDegrades(t *testing.T) {
	searcher := &fakeSearcher{err: &search.AggregateFailure{Errors: []error{errors.New("boom")}}}
	srv := testServer(searcher, &fakeScraper{}, "")

	w := doRequest(t, srv, "GET", "/api/jobs/search?query=devops", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected degraded 200, got %d", w.Code)
	}

	var resp searchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Success {
		t.Errorf("Expected success=false")
	}
	if resp.Jobs == nil || len(resp.Jobs) != 0 {
		t.Errorf("Expected empty jobs array, got %v", resp.Jobs)
	}
	if resp.Pagination.TotalJobs != 0 || resp.Pagination.NextPage != nil {
		t.Errorf("Expected zeroed pagination, got %+v", resp.Pagination)
	}
}

func TestSearchJobs_ValidationError(t *testing.T) {
	searcher := &fakeSearcher{err: &search.ValidationError{Err: errors.New("at least one source must be enabled")}}
	srv := testServer(searcher, &fakeScraper{}, "")

	w := doRequest(t, srv, "GET", "/api/jobs/search?includeDatabase=false&includeExternal=false&includeSample=false", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
}

func TestTriggerScrape_RequiresAPIKey(t *testing.T) {
	scr := &fakeScraper{results: []job.ScrapeResult{
		{Source: "adzuna", JobsAdded: 7, DuplicatesSkipped: 3},
		{Source: "jooble", Errors: []string{"timeout"}},
	}}
	srv := testServer(&fakeSearcher{}, scr, "secret")

	body := `{"query": "engineer", "countries": ["in", "us"]}`

	w := doRequest(t, srv, "POST", "/api/jobs/scrape", body, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without key, got %d", w.Code)
	}

	w = doRequest(t, srv, "POST", "/api/jobs/scrape", body, map[string]string{"X-API-Key": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 with wrong key, got %d", w.Code)
	}

	w = doRequest(t, srv, "POST", "/api/jobs/scrape", body, map[string]string{"X-API-Key": "secret"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 with valid key, got %d: %s", w.Code, w.Body.String())
	}

	var resp scrapeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.TotalJobs != 7 || resp.TotalDuplicates != 3 || resp.TotalErrors != 1 {
		t.Errorf("Unexpected scrape summary: %+v", resp)
	}
}

func TestTriggerScrape_Validation(t *testing.T) {
	srv := testServer(&fakeSearcher{}, &fakeScraper{}, "secret")
	headers := map[string]string{"X-API-Key": "secret"}

	w := doRequest(t, srv, "POST", "/api/jobs/scrape", `{"countries": ["in"]}`, headers)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing query, got %d", w.Code)
	}

	w = doRequest(t, srv, "POST", "/api/jobs/scrape", `{"query": "devops", "countries": ["atlantis"]}`, headers)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown country, got %d", w.Code)
	}
}

func TestScrapeDisabledWithoutKey(t *testing.T) {
	srv := testServer(&fakeSearcher{}, &fakeScraper{}, "")

	w := doRequest(t, srv, "POST", "/api/jobs/scrape", `{"query": "devops"}`, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected scrape route to be absent without an access key, got %d", w.Code)
	}
}

func TestGetHealth(t *testing.T) {
	srv := testServer(&fakeSearcher{}, &fakeScraper{}, "")

	w := doRequest(t, srv, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "ok" || body["version"] != "test" {
		t.Errorf("Unexpected health payload: %v", body)
	}
}

func TestGetStats(t *testing.T) {
	scr := &fakeScraper{counts: map[string]int{"adzuna": 12, "jooble": 8}}
	srv := testServer(&fakeSearcher{}, scr, "")

	w := doRequest(t, srv, "GET", "/stats", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body struct {
		Success   bool           `json:"success"`
		TotalJobs int            `json:"total_jobs"`
		Sources   map[string]int `json:"sources"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !body.Success || body.TotalJobs != 20 {
		t.Errorf("Unexpected stats payload: %+v", body)
	}
}
