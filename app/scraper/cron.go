package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/providers"
)

// Runner drives periodic scrapes of the targets declared in the sources
// file. One pass runs immediately on Start so a fresh deployment has data
// before the first tick.
type Runner struct {
	cron    *cron.Cron
	scraper *Scraper
	targets providers.ScrapeTargets
	spec    string
}

func NewRunner(s *Scraper, targets providers.ScrapeTargets, intervalHours int) *Runner {
	return &Runner{
		cron:    cron.New(),
		scraper: s,
		targets: targets,
		spec:    fmt.Sprintf("@every %dh", intervalHours),
	}
}

func (r *Runner) Start(ctx context.Context) error {
	if len(r.targets.Queries) == 0 {
		slog.Info("No scrape targets configured, periodic scrape disabled")
		return nil
	}

	if _, err := r.cron.AddFunc(r.spec, func() { r.runPass(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule scrape: %w", err)
	}

	r.cron.Start()
	slog.Info("Periodic scrape scheduled", "spec", r.spec, "queries", len(r.targets.Queries))

	go r.runPass(ctx)

	return nil
}

// Stop halts the schedule and returns once any in-flight pass registered
// with the cron runner has finished.
func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Runner) runPass(ctx context.Context) {
	opts := Options{MaxJobsPerSource: r.targets.MaxJobsPerSource}

	for _, q := range r.targets.Queries {
		if ctx.Err() != nil {
			return
		}

		results := r.scraper.ScrapeAll(ctx, q.Query, q.Countries, opts)

		added, dupes, errCount := 0, 0, 0
		for _, res := range results {
			added += res.JobsAdded
			dupes += res.DuplicatesSkipped
			errCount += len(res.Errors)
		}
		slog.Info("Scheduled scrape query finished",
			"query", q.Query,
			"countries", q.Countries,
			"added", added,
			"duplicates", dupes,
			"errors", errCount)
	}
}
