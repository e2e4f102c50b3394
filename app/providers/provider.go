package providers

import (
	"context"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
)

// Provider fetches one page of listings from a single external job board,
// already converted into canonical records. Adapters return honest errors;
// failure isolation (error -> empty result) is the caller's responsibility so
// the orchestrator and scraper can report per-source outcomes.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, query, country string, page int) ([]job.Job, error)
}
