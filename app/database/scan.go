package database

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
)

func scanJob(rows *sql.Rows) (job.Job, error) {
	var j job.Job
	var salaryMin, salaryMax sql.NullFloat64
	var salaryCurrency sql.NullString
	var skills pq.StringArray

	err := rows.Scan(
		&j.ID, &j.Source, &j.SourceID, &j.Title, &j.Company,
		&j.Location, &j.Country, &j.Description,
		&salaryMin, &salaryMax, &salaryCurrency,
		&j.JobType, &j.ExperienceLevel, &j.Sector,
		&j.IsRemote, &j.IsHybrid, &skills,
		&j.PostedAt, &j.ApplyURL, &j.IsActive,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}

	if salaryCurrency.Valid || salaryMin.Valid || salaryMax.Valid {
		j.Salary = &job.Salary{
			Min:      salaryMin.Float64,
			Max:      salaryMax.Float64,
			Currency: salaryCurrency.String,
		}
	}
	j.Skills = []string(skills)

	return j, nil
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
