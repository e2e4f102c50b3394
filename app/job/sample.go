package job

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// SampleGenerator produces deterministic placeholder listings so the search
// response is never empty when every real source comes back short. The same
// (query, country) pair always yields the same jobs.
type SampleGenerator struct {
	now func() time.Time
}

func NewSampleGenerator() *SampleGenerator {
	return &SampleGenerator{now: time.Now}
}

// NewSampleGeneratorWithClock is used by tests that need stable PostedAt values.
func NewSampleGeneratorWithClock(now func() time.Time) *SampleGenerator {
	return &SampleGenerator{now: now}
}

var sampleCompanies = []string{
	"TechVista Solutions", "Nexora Labs", "BlueOrbit Systems", "Craftwell Digital",
	"Meridian Softworks", "Aventra Group", "PixelForge", "NorthStar Analytics",
}

var sampleSectors = []string{
	"technology", "finance", "healthcare", "education", "retail",
}

var sampleCities = map[string][]string{
	"in": {"Bangalore", "Mumbai", "Delhi", "Hyderabad", "Pune"},
	"us": {"New York", "San Francisco", "Austin", "Seattle", "Chicago"},
	"gb": {"London", "Manchester", "Birmingham", "Edinburgh"},
	"ae": {"Dubai", "Abu Dhabi", "Sharjah"},
}

var sampleJobTypes = []string{"full-time", "part-time", "contract", "internship"}
var sampleLevels = []string{"entry", "mid", "senior"}

// Generate returns n sample jobs for the given normalized query and country.
func (g *SampleGenerator) Generate(query, country string, n int) []Job {
	if n <= 0 {
		return nil
	}

	title := strings.TrimSpace(query)
	if title == "" {
		title = "software developer"
	}

	cities, ok := sampleCities[country]
	if !ok {
		cities = sampleCities["in"]
	}

	h := fnv.New64a()
	h.Write([]byte(query + "|" + country))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	now := g.now().UTC()
	jobs := make([]Job, 0, n)
	for i := 0; i < n; i++ {
		company := sampleCompanies[rng.Intn(len(sampleCompanies))]
		city := cities[rng.Intn(len(cities))]
		level := sampleLevels[rng.Intn(len(sampleLevels))]
		base := 300000 + float64(rng.Intn(12))*50000

		jobs = append(jobs, Job{
			Source:          SourceSample,
			SourceID:        fmt.Sprintf("sample-%s-%s-%d", slugify(title), country, i),
			Title:           fmt.Sprintf("%s (%s level)", titleCaser.String(title), level),
			Company:         company,
			Location:        city,
			Country:         country,
			Description:     fmt.Sprintf("We are hiring a %s to join our %s team in %s.", title, company, city),
			Salary:          &Salary{Min: base, Max: base * 1.6, Currency: currencyFor(country)},
			JobType:         sampleJobTypes[rng.Intn(len(sampleJobTypes))],
			ExperienceLevel: level,
			Sector:          sampleSectors[rng.Intn(len(sampleSectors))],
			IsRemote:        rng.Intn(3) == 0,
			PostedAt:        now.AddDate(0, 0, -rng.Intn(14)),
			ApplyURL:        fmt.Sprintf("https://example.com/jobs/%s-%d", slugify(title), i),
			IsActive:        true,
		})
	}

	return jobs
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

func currencyFor(country string) string {
	switch country {
	case "in":
		return "INR"
	case "gb":
		return "GBP"
	case "ae":
		return "AED"
	case "au":
		return "AUD"
	case "ca":
		return "CAD"
	default:
		return "USD"
	}
}
