package cfg

type Cfg struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Cache configuration
	CacheBackend string // "memory" or "redis"
	RedisAddr    string
	CacheTTL     int // seconds

	// Provider credentials
	AdzunaAppID  string
	AdzunaAppKey string
	RapidAPIKey  string
	JoobleAPIKey string

	// Application configuration
	SourcesFile     string
	Port            string
	APIAccessKey    string
	ScrapeInterval  int // hours, 0 disables the periodic scrape
	MaxPageSize     int
	MinResultsFloor int
	ProviderTimeout int // seconds

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
