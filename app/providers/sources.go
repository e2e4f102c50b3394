package providers

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/cfg"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
)

// SourcesConfig is the operator-editable description of which providers are
// enabled and what the batch scraper should periodically fetch.
type SourcesConfig struct {
	Providers map[string]SourceSettings `yaml:"providers"`
	Scrape    ScrapeTargets             `yaml:"scrape"`
}

type SourceSettings struct {
	Enabled bool `yaml:"enabled"`
}

type ScrapeTargets struct {
	MaxJobsPerSource int           `yaml:"max_jobs_per_source"`
	Queries          []ScrapeQuery `yaml:"queries"`
}

type ScrapeQuery struct {
	Query     string   `yaml:"query"`
	Countries []string `yaml:"countries"`
}

var knownProviders = map[string]bool{
	"adzuna":  true,
	"jsearch": true,
	"jooble":  true,
}

// LoadSources reads and validates the sources file. A missing file is not an
// error: every provider defaults to enabled with no scheduled scrape targets.
func LoadSources(path string) (*SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultSources(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var sc SourcesConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse sources file %s: %w", path, err)
	}

	for name := range sc.Providers {
		if !knownProviders[name] {
			return nil, fmt.Errorf("unknown provider %q in %s", name, path)
		}
	}
	for i, q := range sc.Scrape.Queries {
		if q.Query == "" {
			return nil, fmt.Errorf("scrape query %d in %s has no query text", i, path)
		}
		for _, c := range q.Countries {
			if job.NormalizeCountry(c) == "" {
				return nil, fmt.Errorf("scrape query %q has unresolvable country %q", q.Query, c)
			}
		}
	}

	if sc.Providers == nil {
		sc.Providers = defaultSources().Providers
	}

	return &sc, nil
}

func defaultSources() *SourcesConfig {
	return &SourcesConfig{
		Providers: map[string]SourceSettings{
			"adzuna":  {Enabled: true},
			"jsearch": {Enabled: true},
			"jooble":  {Enabled: true},
		},
	}
}

// Enabled reports whether a provider is switched on in the sources file.
// Providers absent from the file default to enabled.
func (sc *SourcesConfig) Enabled(name string) bool {
	if sc == nil || sc.Providers == nil {
		return true
	}
	s, ok := sc.Providers[name]
	if !ok {
		return true
	}
	return s.Enabled
}

// BuildRegistry constructs every enabled provider adapter with a shared
// rate-limited HTTP client. Adapters with missing credentials are still
// registered; they skip gracefully at fetch time.
func BuildRegistry(c *cfg.Cfg, sc *SourcesConfig) []Provider {
	client := NewClient(time.Duration(c.ProviderTimeout)*time.Second, c.UserAgent)

	all := []Provider{
		NewAdzuna(c.AdzunaAppID, c.AdzunaAppKey, client),
		NewJSearch(c.RapidAPIKey, client),
		NewJooble(c.JoobleAPIKey, client),
	}

	enabled := make([]Provider, 0, len(all))
	for _, p := range all {
		if sc.Enabled(p.Name()) {
			enabled = append(enabled, p)
		}
	}
	return enabled
}
