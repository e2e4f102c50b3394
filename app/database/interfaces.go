package database

import (
	"context"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
)

// JobRepository is the persistence contract consumed by the search
// orchestrator and the batch scraper. Implementations resolve concurrent
// writes through the storage engine's conflict primitive on the
// (source, source_id) uniqueness constraint, not in-process locking.
type JobRepository interface {
	// Search returns active jobs matching the filter parameters, newest
	// first, capped at limit, plus the total match count for pagination.
	Search(ctx context.Context, params job.SearchParams, limit int) ([]job.Job, int, error)

	// Upsert inserts or updates each job keyed by (source, source_id),
	// preserving creation timestamps on update. A malformed record is
	// logged and skipped without aborting the batch. Returns the persisted
	// records and how many of them were fresh inserts.
	Upsert(ctx context.Context, jobs []job.Job) ([]job.Job, int, error)

	// CountBySource returns stored job totals grouped by source tag.
	CountBySource(ctx context.Context) (map[string]int, error)
}
