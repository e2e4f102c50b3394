package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/cache"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/scraper"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/search"
)

type SearcherInterface interface {
	Run(ctx context.Context, params job.SearchParams) (*job.SearchResult, error)
}

var _ SearcherInterface = (*search.Orchestrator)(nil)

type ScraperInterface interface {
	ScrapeAll(ctx context.Context, query string, countries []string, opts scraper.Options) []job.ScrapeResult
	Stats(ctx context.Context) (map[string]int, error)
}

var _ ScraperInterface = (*scraper.Scraper)(nil)

type Handler struct {
	searcher SearcherInterface
	scraper  ScraperInterface
	cache    cache.Cache

	maxPageSize int
	version     string
}

func NewHandler(searcher SearcherInterface, scr ScraperInterface, c cache.Cache, maxPageSize int, version string) *Handler {
	return &Handler{
		searcher:    searcher,
		scraper:     scr,
		cache:       c,
		maxPageSize: maxPageSize,
		version:     version,
	}
}

func (h *Handler) SearchJobs(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, degradedResponse(err.Error()))
		return
	}

	params := job.NewSearchParams()
	params.Query = req.Query
	params.Location = req.Location
	params.Country = req.Country
	params.JobType = req.JobType
	params.ExperienceLevel = req.ExperienceLevel
	params.IsRemote = req.IsRemote
	params.SalaryMin = req.SalaryMin
	params.SalaryMax = req.SalaryMax
	params.Sector = req.Sector
	if req.Page > 0 {
		params.Page = req.Page
	}
	if req.Limit > 0 {
		params.Limit = req.Limit
	}
	if req.IncludeDatabase != nil {
		params.IncludeDatabase = *req.IncludeDatabase
	}
	if req.IncludeExternal != nil {
		params.IncludeExternal = *req.IncludeExternal
	}
	if req.IncludeSample != nil {
		params.IncludeSample = *req.IncludeSample
	}

	// Normalized here as well so the pagination envelope reflects the
	// clamped page and limit actually used.
	params.Normalize(h.maxPageSize)

	result, err := h.searcher.Run(c.Request.Context(), params)
	if err != nil {
		var ve *search.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, degradedResponse(ve.Error()))
			return
		}

		var agg *search.AggregateFailure
		if errors.As(err, &agg) {
			slog.Error("Search failed on every source", "error", agg)
			c.JSON(http.StatusOK, degradedResponse("all sources failed"))
			return
		}

		slog.Error("Search failed", "error", err)
		c.JSON(http.StatusInternalServerError, degradedResponse("internal error"))
		return
	}

	c.JSON(http.StatusOK, buildSearchResponse(result, params))
}

func buildSearchResponse(result *job.SearchResult, params job.SearchParams) searchResponse {
	totalPages := (result.TotalJobs + params.Limit - 1) / params.Limit

	var nextPage *int
	if result.HasMore {
		n := params.Page + 1
		nextPage = &n
	}

	jobs := result.Jobs
	if jobs == nil {
		jobs = []job.Job{}
	}

	return searchResponse{
		Success: true,
		Jobs:    jobs,
		Pagination: pagination{
			CurrentPage: params.Page,
			TotalJobs:   result.TotalJobs,
			HasMore:     result.HasMore,
			NextPage:    nextPage,
			JobsPerPage: params.Limit,
			TotalPages:  totalPages,
		},
		Sources:  result.Sources,
		Metadata: result.Metadata,
	}
}

// degradedResponse is the fully-shaped failure envelope: callers always get
// an empty jobs array and zeroed pagination rather than missing fields.
func degradedResponse(msg string) searchResponse {
	return searchResponse{
		Success: false,
		Jobs:    []job.Job{},
		Error:   msg,
	}
}

func (h *Handler) TriggerScrape(c *gin.Context) {
	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "query is required"})
		return
	}
	for _, country := range req.Countries {
		if job.NormalizeCountry(country) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unknown country: " + country})
			return
		}
	}

	start := time.Now()
	results := h.scraper.ScrapeAll(c.Request.Context(), req.Query, req.Countries, scraper.Options{
		MaxJobsPerSource: req.MaxJobsPerSource,
		Sources:          req.Sources,
	})

	resp := scrapeResponse{
		Success:  true,
		Duration: time.Since(start).Round(time.Millisecond).String(),
		Sources:  results,
	}
	for _, r := range results {
		resp.TotalJobs += r.JobsAdded
		resp.TotalDuplicates += r.DuplicatesSkipped
		resp.TotalErrors += len(r.Errors)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"version":       h.version,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
		"cache_entries": h.cache.Len(),
	})
}

func (h *Handler) GetStats(c *gin.Context) {
	counts, err := h.scraper.Stats(c.Request.Context())
	if err != nil {
		slog.Error("Database error", "operation", "count_by_source", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "database error"})
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"total_jobs":    total,
		"sources":       counts,
		"cache_entries": h.cache.Len(),
	})
}
