package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/cache"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/cfg"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/database"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/providers"
)

// mergeFetchLimit caps how many database rows feed the merge. It is fixed
// rather than page-derived so consecutive pages slice the same underlying
// set.
const mergeFetchLimit = 200

// Orchestrator runs the full search pipeline: cache lookup, concurrent
// source fan-out, dedup, sort, pagination, cache store.
type Orchestrator struct {
	repo      database.JobRepository
	providers []providers.Provider
	cache     cache.Cache
	sample    *job.SampleGenerator
	dedup     *job.Deduper

	cacheTTL        time.Duration
	providerTimeout time.Duration
	minResultsFloor int
	maxPageSize     int

	now func() time.Time
}

func NewOrchestrator(repo database.JobRepository, provs []providers.Provider, c cache.Cache, conf *cfg.Cfg) *Orchestrator {
	return &Orchestrator{
		repo:            repo,
		providers:       provs,
		cache:           c,
		sample:          job.NewSampleGenerator(),
		dedup:           job.NewDeduper(),
		cacheTTL:        time.Duration(conf.CacheTTL) * time.Second,
		providerTimeout: time.Duration(conf.ProviderTimeout) * time.Second,
		minResultsFloor: conf.MinResultsFloor,
		maxPageSize:     conf.MaxPageSize,
		now:             time.Now,
	}
}

// Run executes a search. Identical parameter sets within the cache TTL are
// answered from the cache with Metadata.Cached set. A source branch that
// fails is logged and dropped without affecting its siblings; only when
// every enabled source fails does Run return an AggregateFailure.
func (o *Orchestrator) Run(ctx context.Context, params job.SearchParams) (*job.SearchResult, error) {
	params.Normalize(o.maxPageSize)
	if err := params.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	key := cache.Key(params)
	if hit, ok := o.cache.Get(key); ok {
		result := *hit
		result.Metadata.Cached = true
		return &result, nil
	}

	start := o.now()

	merged, branchErrs, launched := o.fanOut(ctx, params)
	if launched > 0 && len(branchErrs) == launched {
		return nil, &AggregateFailure{Errors: branchErrs}
	}

	merged, _ = o.dedup.Run(merged)

	if params.IncludeSample && len(merged) < o.minResultsFloor {
		merged = append(merged, o.sample.Generate(params.Query, params.Country, o.minResultsFloor-len(merged))...)
	}

	sortJobs(merged)

	result := o.assemble(merged, params)
	result.Metadata.SearchTimeMS = o.now().Sub(start).Milliseconds()

	o.cache.Set(key, result, o.cacheTTL)

	return result, nil
}

// fanOut queries the database and every registered provider concurrently.
// Database results come first in the merged slice so persisted records win
// otherwise-equal dedup collisions. Branch errors are collected, never
// propagated through the group, so one slow or broken source cannot cancel
// the others. Caller cancellation still reaches every branch through ctx.
func (o *Orchestrator) fanOut(ctx context.Context, params job.SearchParams) ([]job.Job, []error, int) {
	var (
		mu       sync.Mutex
		dbJobs   []job.Job
		external [][]job.Job
		errs     []error
		launched int
	)

	g, gctx := errgroup.WithContext(ctx)

	if params.IncludeDatabase {
		launched++
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(gctx, o.providerTimeout)
			defer cancel()

			jobs, _, err := o.repo.Search(sctx, params, mergeFetchLimit)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Warn("Database search failed", "error", err)
				errs = append(errs, fmt.Errorf("database: %w", err))
				return nil
			}
			dbJobs = jobs
			return nil
		})
	}

	if params.IncludeExternal {
		external = make([][]job.Job, len(o.providers))
		for i, p := range o.providers {
			i, p := i, p // per-iteration copies for the closure (pre-go1.22 loop semantics)
			launched++
			g.Go(func() error {
				fctx, cancel := context.WithTimeout(gctx, o.providerTimeout)
				defer cancel()

				// Providers are always asked for their first page;
				// pagination applies to the merged set, not to any
				// single upstream.
				jobs, err := p.Fetch(fctx, params.Query, params.Country, 1)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					slog.Warn("Provider fetch failed", "provider", p.Name(), "error", err)
					errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
					return nil
				}
				external[i] = jobs
				return nil
			})
		}
	}

	g.Wait()

	merged := make([]job.Job, 0, len(dbJobs))
	merged = append(merged, dbJobs...)
	for _, jobs := range external {
		merged = append(merged, jobs...)
	}

	return merged, errs, launched
}

// assemble slices the requested page window out of the sorted merged set and
// computes per-source counts and metadata over the whole set.
func (o *Orchestrator) assemble(all []job.Job, params job.SearchParams) *job.SearchResult {
	total := len(all)
	start := (params.Page - 1) * params.Limit
	end := start + params.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	counts := job.SourceCounts{}
	sectorSet := make(map[string]bool)
	countrySet := make(map[string]bool)
	for _, j := range all {
		switch {
		case j.Source == job.SourceSample:
			counts.Sample++
		case j.Persisted():
			counts.Database++
		default:
			counts.External++
		}
		if j.Sector != "" {
			sectorSet[j.Sector] = true
		}
		if j.Country != "" {
			countrySet[j.Country] = true
		}
	}

	page := make([]job.Job, end-start)
	copy(page, all[start:end])

	return &job.SearchResult{
		Jobs:      page,
		TotalJobs: total,
		HasMore:   end < total,
		Sources:   counts,
		Metadata: job.Metadata{
			Sectors:   sortedKeys(sectorSet),
			Countries: sortedKeys(countrySet),
		},
	}
}

func sortJobs(jobs []job.Job) {
	sort.SliceStable(jobs, func(i, k int) bool {
		if !jobs[i].PostedAt.Equal(jobs[k].PostedAt) {
			return jobs[i].PostedAt.After(jobs[k].PostedAt)
		}
		return job.Completeness(jobs[i]) > job.Completeness(jobs[k])
	})
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
