package cache

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
)

// keyPrefix namespaces cache entries so backends sharing a store with other
// data can address search entries alone.
const keyPrefix = "search:"

// Key derives the cache key for a normalized parameter set. Every parameter
// that affects the result participates, so semantically different searches
// never collide and identical searches always hit the same entry.
func Key(p job.SearchParams) string {
	remote := "any"
	if p.IsRemote != nil {
		remote = strconv.FormatBool(*p.IsRemote)
	}

	parts := []string{
		p.Query,
		p.Location,
		p.Country,
		p.JobType,
		p.ExperienceLevel,
		remote,
		strconv.FormatFloat(p.SalaryMin, 'f', -1, 64),
		strconv.FormatFloat(p.SalaryMax, 'f', -1, 64),
		p.Sector,
		strconv.Itoa(p.Page),
		strconv.Itoa(p.Limit),
		strconv.FormatBool(p.IncludeDatabase),
		strconv.FormatBool(p.IncludeExternal),
		strconv.FormatBool(p.IncludeSample),
	}

	hash := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return fmt.Sprintf("%s%x", keyPrefix, hash[:16])
}
