package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lib/pq"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
)

var _ JobRepository = (*PostgresJobRepository)(nil)

type PostgresJobRepository struct {
	db *DB
}

func NewJobRepository(db *DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, source, source_id, COALESCE(title, ''), COALESCE(company, ''),
	COALESCE(location, ''), COALESCE(country, ''), COALESCE(description, ''),
	salary_min, salary_max, salary_currency,
	COALESCE(job_type, ''), COALESCE(experience_level, ''), COALESCE(sector, ''),
	is_remote, is_hybrid, COALESCE(skills, '{}'),
	COALESCE(posted_at, created_at), COALESCE(apply_url, ''), is_active,
	created_at, updated_at`

func (r *PostgresJobRepository) Search(ctx context.Context, params job.SearchParams, limit int) ([]job.Job, int, error) {
	where, args := buildSearchFilter(params)

	var total int
	countQuery := "SELECT COUNT(*) FROM jobs " + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM jobs %s ORDER BY COALESCE(posted_at, created_at) DESC LIMIT $%d`,
		jobColumns, where, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search jobs: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, total, nil
}

// buildSearchFilter translates normalized search params into a WHERE clause.
// Always restricted to active listings.
func buildSearchFilter(params job.SearchParams) (string, []interface{}) {
	clauses := []string{"is_active = TRUE"}
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if params.Query != "" {
		p := arg("%" + params.Query + "%")
		clauses = append(clauses, fmt.Sprintf("(title ILIKE %s OR description ILIKE %s OR company ILIKE %s)", p, p, p))
	}
	if params.Location != "" {
		clauses = append(clauses, fmt.Sprintf("location ILIKE %s", arg("%"+params.Location+"%")))
	}
	if params.Country != "" {
		clauses = append(clauses, fmt.Sprintf("country = %s", arg(params.Country)))
	}
	if params.JobType != "" {
		clauses = append(clauses, fmt.Sprintf("job_type = %s", arg(params.JobType)))
	}
	if params.ExperienceLevel != "" {
		clauses = append(clauses, fmt.Sprintf("experience_level = %s", arg(params.ExperienceLevel)))
	}
	if params.Sector != "" {
		clauses = append(clauses, fmt.Sprintf("sector = %s", arg(params.Sector)))
	}
	if params.IsRemote != nil {
		clauses = append(clauses, fmt.Sprintf("is_remote = %s", arg(*params.IsRemote)))
	}
	if params.SalaryMin > 0 {
		clauses = append(clauses, fmt.Sprintf("salary_max >= %s", arg(params.SalaryMin)))
	}
	if params.SalaryMax > 0 {
		clauses = append(clauses, fmt.Sprintf("salary_min <= %s", arg(params.SalaryMax)))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (r *PostgresJobRepository) Upsert(ctx context.Context, jobs []job.Job) ([]job.Job, int, error) {
	persisted := make([]job.Job, 0, len(jobs))
	inserted := 0

	for _, j := range jobs {
		if j.Source == "" || j.SourceID == "" {
			slog.Warn("Skipping job without source identity", "title", j.Title, "company", j.Company)
			continue
		}

		stored, fresh, err := r.upsertOne(ctx, j)
		if err != nil {
			slog.Warn("Failed to upsert job, skipping", "source", j.Source, "source_id", j.SourceID, "error", err)
			continue
		}
		if fresh {
			inserted++
		}
		persisted = append(persisted, stored)
	}

	return persisted, inserted, nil
}

func (r *PostgresJobRepository) upsertOne(ctx context.Context, j job.Job) (job.Job, bool, error) {
	var salaryMin, salaryMax sql.NullFloat64
	var salaryCurrency sql.NullString
	if j.Salary != nil {
		salaryMin = sql.NullFloat64{Float64: j.Salary.Min, Valid: true}
		salaryMax = sql.NullFloat64{Float64: j.Salary.Max, Valid: true}
		salaryCurrency = sql.NullString{String: j.Salary.Currency, Valid: true}
	}

	var raw interface{}
	if len(j.Raw) > 0 {
		raw = []byte(j.Raw)
	}

	// xmax = 0 distinguishes a fresh insert from a conflict update.
	var fresh bool
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO jobs (
			source, source_id, title, company, location, country, description,
			salary_min, salary_max, salary_currency,
			job_type, experience_level, sector, is_remote, is_hybrid, skills,
			posted_at, apply_url, is_active, raw_payload
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (source, source_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			salary_currency = EXCLUDED.salary_currency,
			is_active = EXCLUDED.is_active,
			posted_at = EXCLUDED.posted_at,
			updated_at = NOW()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
	`, j.Source, j.SourceID, j.Title, j.Company, j.Location, j.Country, j.Description,
		salaryMin, salaryMax, salaryCurrency,
		j.JobType, j.ExperienceLevel, j.Sector, j.IsRemote, j.IsHybrid, pq.Array(j.Skills),
		nullTime(j.PostedAt), j.ApplyURL, j.IsActive, raw,
	).Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt, &fresh)

	if err != nil {
		return job.Job{}, false, fmt.Errorf("failed to upsert job: %w", err)
	}

	return j, fresh, nil
}

func (r *PostgresJobRepository) CountBySource(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT source, COUNT(*) FROM jobs GROUP BY source`)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs by source: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var source string
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return nil, fmt.Errorf("failed to scan source count: %w", err)
		}
		counts[source] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating source counts: %w", err)
	}

	return counts, nil
}
