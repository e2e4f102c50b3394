package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/database"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/providers"
)

const (
	defaultMaxJobsPerSource = 100
	maxPagesPerCountry      = 3
)

// Scraper pulls listings from every registered provider and persists them.
// Each source is scraped in its own goroutine and collects its own errors, so
// one broken upstream never stops the others.
type Scraper struct {
	providers []providers.Provider
	repo      database.JobRepository
	dedup     *job.Deduper

	providerTimeout time.Duration
}

func NewScraper(provs []providers.Provider, repo database.JobRepository, providerTimeout time.Duration) *Scraper {
	return &Scraper{
		providers:       provs,
		repo:            repo,
		dedup:           job.NewDeduper(),
		providerTimeout: providerTimeout,
	}
}

// Options narrows a scrape run. Zero values mean "everything": all registered
// sources, default per-source cap.
type Options struct {
	MaxJobsPerSource int
	Sources          []string
}

func (o Options) wants(name string) bool {
	if len(o.Sources) == 0 {
		return true
	}
	for _, s := range o.Sources {
		if s == name {
			return true
		}
	}
	return false
}

// ScrapeAll runs one scrape pass: every selected source concurrently, the
// requested countries sequentially within each source. Fetch and persistence
// errors are recorded in the source's own result; a failed source reports
// zero added jobs rather than failing the pass.
func (s *Scraper) ScrapeAll(ctx context.Context, query string, countries []string, opts Options) []job.ScrapeResult {
	if opts.MaxJobsPerSource <= 0 {
		opts.MaxJobsPerSource = defaultMaxJobsPerSource
	}
	if len(countries) == 0 {
		countries = []string{"in"}
	}

	selected := make([]providers.Provider, 0, len(s.providers))
	for _, p := range s.providers {
		if opts.wants(p.Name()) {
			selected = append(selected, p)
		}
	}

	var mu sync.Mutex
	results := make([]job.ScrapeResult, 0, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range selected {
		p := p // per-iteration copy for the closure (pre-go1.22 loop semantics)
		g.Go(func() error {
			r := s.scrapeSource(gctx, p, query, countries, opts.MaxJobsPerSource)
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return results
}

// scrapeSource collects up to maxJobs listings from one provider across the
// given countries, collapses duplicates, and upserts the remainder.
func (s *Scraper) scrapeSource(ctx context.Context, p providers.Provider, query string, countries []string, maxJobs int) job.ScrapeResult {
	start := time.Now()
	result := job.ScrapeResult{Source: p.Name()}

	var batch []job.Job
	for _, country := range countries {
		for page := 1; page <= maxPagesPerCountry && len(batch) < maxJobs; page++ {
			fctx, cancel := context.WithTimeout(ctx, s.providerTimeout)
			jobs, err := p.Fetch(fctx, query, country, page)
			cancel()

			if err != nil {
				slog.Warn("Scrape fetch failed",
					"source", p.Name(), "country", country, "page", page, "error", err)
				result.Errors = append(result.Errors, fmt.Sprintf("%s/%s: %v", country, query, err))
				break
			}
			if len(jobs) == 0 {
				break
			}
			batch = append(batch, jobs...)
		}
	}

	if len(batch) > maxJobs {
		batch = batch[:maxJobs]
	}

	deduped, inBatchDupes := s.dedup.Run(batch)
	result.DuplicatesSkipped = inBatchDupes

	if len(deduped) > 0 {
		persisted, inserted, err := s.repo.Upsert(ctx, deduped)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("upsert: %v", err))
		} else {
			result.JobsAdded = inserted
			// Rows the upsert matched instead of inserting were
			// already stored by an earlier pass.
			result.DuplicatesSkipped += len(persisted) - inserted
		}
	}

	result.Duration = time.Since(start)

	slog.Info("Scrape pass finished",
		"source", result.Source,
		"added", result.JobsAdded,
		"duplicates", result.DuplicatesSkipped,
		"errors", len(result.Errors),
		"duration", result.Duration)

	return result
}

// Stats returns stored job totals grouped by source tag.
func (s *Scraper) Stats(ctx context.Context) (map[string]int, error) {
	return s.repo.CountBySource(ctx)
}
