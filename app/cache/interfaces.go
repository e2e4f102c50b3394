package cache

import (
	"time"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
)

// Cache stores fully-merged search results under deterministic keys. Entries
// are valid only until their TTL elapses; nothing invalidates them early.
type Cache interface {
	Get(key string) (*job.SearchResult, bool)
	Set(key string, result *job.SearchResult, ttl time.Duration)
	Evict(key string)
	Len() int
	Close() error
}
