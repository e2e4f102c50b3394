package cfg

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	// Equivalent of cmp.Or(Version, "unknown"); cmp.Or needs go1.22+.
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Database configuration
	DBHost     string `long:"db-host" env:"DB_HOST" default:"localhost" description:"Database host"`
	DBPort     string `long:"db-port" env:"DB_PORT" default:"5432" description:"Database port"`
	DBUser     string `long:"db-user" env:"DB_USER" default:"jobs_user" description:"Database user"`
	DBPassword string `long:"db-password" env:"DB_PASSWORD" default:"jobs_password" description:"Database password (required)" required:"true"`
	DBName     string `long:"db-name" env:"DB_NAME" default:"jobs_aggregator" description:"Database name"`

	// Cache configuration
	CacheBackend string `long:"cache-backend" env:"CACHE_BACKEND" default:"memory" choice:"memory" choice:"redis" description:"Cache backend for search results"`
	RedisAddr    string `long:"redis-addr" env:"REDIS_ADDR" default:"localhost:6379" description:"Redis address (cache-backend=redis)"`
	CacheTTL     int    `long:"cache-ttl" env:"CACHE_TTL" default:"300" description:"Search result cache TTL in seconds"`

	// Provider credentials
	AdzunaAppID  string `long:"adzuna-app-id" env:"ADZUNA_APP_ID" description:"Adzuna application ID"`
	AdzunaAppKey string `long:"adzuna-app-key" env:"ADZUNA_APP_KEY" description:"Adzuna application key"`
	RapidAPIKey  string `long:"rapidapi-key" env:"RAPIDAPI_KEY" description:"RapidAPI key for the JSearch provider"`
	JoobleAPIKey string `long:"jooble-api-key" env:"JOOBLE_API_KEY" description:"Jooble API key"`

	// Application configuration
	SourcesFile     string `long:"sources-file" env:"SOURCES_FILE" default:"./sources.yml" description:"Provider and scrape target configuration file"`
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey    string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for the scrape trigger (optional)"`
	ScrapeInterval  int    `long:"scrape-interval" env:"SCRAPE_INTERVAL" default:"6" description:"Batch scrape interval in hours (0 disables)"`
	MaxPageSize     int    `long:"max-page-size" env:"MAX_PAGE_SIZE" default:"200" description:"Upper bound for the search limit parameter"`
	MinResultsFloor int    `long:"min-results-floor" env:"MIN_RESULTS_FLOOR" default:"5" description:"Minimum result count before sample jobs are generated"`
	ProviderTimeout int    `long:"provider-timeout" env:"PROVIDER_TIMEOUT" default:"15" description:"Per-provider request timeout in seconds"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"JobAggregator/1.0" description:"User agent string for provider requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBHost:          raw.DBHost,
		DBPort:          raw.DBPort,
		DBUser:          raw.DBUser,
		DBPassword:      raw.DBPassword,
		DBName:          raw.DBName,
		CacheBackend:    raw.CacheBackend,
		RedisAddr:       raw.RedisAddr,
		CacheTTL:        raw.CacheTTL,
		AdzunaAppID:     raw.AdzunaAppID,
		AdzunaAppKey:    raw.AdzunaAppKey,
		RapidAPIKey:     raw.RapidAPIKey,
		JoobleAPIKey:    raw.JoobleAPIKey,
		SourcesFile:     raw.SourcesFile,
		Port:            raw.Port,
		APIAccessKey:    raw.APIAccessKey,
		ScrapeInterval:  raw.ScrapeInterval,
		MaxPageSize:     raw.MaxPageSize,
		MinResultsFloor: raw.MinResultsFloor,
		ProviderTimeout: raw.ProviderTimeout,
		UserAgent:       raw.UserAgent,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// SetForTesting replaces the global configuration. Test helper only.
func SetForTesting(c *Cfg) {
	globalCfg = c
}
