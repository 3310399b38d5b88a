package postgres

import (
	"context"
	"errors"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, recruiter_id, title, description, required_skills,
       required_region, availability_requirement, status, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(
		&j.ID, &j.RecruiterID, &j.Title, &j.Description, pq.Array(&j.RequiredSkills),
		&j.RequiredRegion, &j.AvailabilityRequirement, &j.Status,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (recruiter_id, title, description, required_skills,
                  required_region, availability_requirement, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		job.RecruiterID, job.Title, job.Description, pq.Array(job.RequiredSkills),
		job.RequiredRegion, job.AvailabilityRequirement, job.Status,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Job, error) {
	query := `UPDATE jobs SET status = $2, updated_at = now()
              WHERE id = $1
              RETURNING ` + jobColumns
	return scanJob(r.db.QueryRow(ctx, query, id, status))
}
