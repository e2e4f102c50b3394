package job

type Deduper struct{}

func NewDeduper() *Deduper {
	return &Deduper{}
}

// Run collapses duplicate listings. For every fingerprint at most one job
// survives; survivors keep their first-seen position. Returns the surviving
// jobs and the number of duplicates dropped.
//
// Seed already-persisted records first when merging against fresh provider
// results: on an otherwise-equal collision the earlier (persisted) record
// wins.
func (d *Deduper) Run(jobs []Job) ([]Job, int) {
	if len(jobs) == 0 {
		return nil, 0
	}

	index := make(map[string]int, len(jobs))
	survivors := make([]Job, 0, len(jobs))
	duplicates := 0

	for _, candidate := range jobs {
		fp := Fingerprint(candidate)

		pos, seen := index[fp]
		if !seen {
			index[fp] = len(survivors)
			survivors = append(survivors, candidate)
			continue
		}

		duplicates++
		if d.prefer(candidate, survivors[pos]) {
			survivors[pos] = candidate
		}
	}

	return survivors, duplicates
}

// prefer reports whether candidate should replace the current survivor.
// More complete data wins; on equal completeness a persisted or manual record
// beats a freshly fetched external one, and otherwise the survivor stays.
func (d *Deduper) prefer(candidate, survivor Job) bool {
	cs, ss := Completeness(candidate), Completeness(survivor)
	if cs != ss {
		return cs > ss
	}
	if len(candidate.Description) != len(survivor.Description) {
		return len(candidate.Description) > len(survivor.Description)
	}
	if candidate.Persisted() != survivor.Persisted() {
		return candidate.Persisted()
	}
	return false
}

// Completeness scores how much optional detail a listing carries. Used to
// pick merge survivors and to break sort ties between same-day listings.
func Completeness(j Job) int {
	score := 0
	if j.Salary != nil {
		score += 2
	}
	if len(j.Skills) > 0 {
		score++
	}
	if j.ApplyURL != "" {
		score++
	}
	return score
}
