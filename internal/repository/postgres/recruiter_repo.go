package postgres

import (
	"context"
	"errors"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recruiterRepo struct {
	db *pgxpool.Pool
}

func NewRecruiterRepository(db *pgxpool.Pool) domain.RecruiterRepository {
	return &recruiterRepo{db: db}
}

const recruiterColumns = `id, email, company_name, contact_name, password, created_at, updated_at`

func scanRecruiter(row pgx.Row) (*domain.Recruiter, error) {
	var rec domain.Recruiter
	err := row.Scan(
		&rec.ID, &rec.Email, &rec.CompanyName, &rec.ContactName, &rec.Password,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recruiterRepo) Create(ctx context.Context, recruiter *domain.Recruiter) error {
	query := `INSERT INTO recruiters (email, company_name, contact_name, password, created_at, updated_at)
              VALUES ($1, $2, $3, $4, now(), now())
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		recruiter.Email, recruiter.CompanyName, recruiter.ContactName, recruiter.Password,
	).Scan(&recruiter.ID, &recruiter.CreatedAt, &recruiter.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Recruiter with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *recruiterRepo) GetByID(ctx context.Context, id int64) (*domain.Recruiter, error) {
	query := `SELECT ` + recruiterColumns + ` FROM recruiters WHERE id = $1`
	return scanRecruiter(r.db.QueryRow(ctx, query, id))
}

func (r *recruiterRepo) GetByEmail(ctx context.Context, email string) (*domain.Recruiter, error) {
	query := `SELECT ` + recruiterColumns + ` FROM recruiters WHERE email = $1`
	return scanRecruiter(r.db.QueryRow(ctx, query, email))
}

func (r *recruiterRepo) Update(ctx context.Context, id int64, update *domain.RecruiterUpdate) (*domain.Recruiter, error) {
	query := `UPDATE recruiters SET
                  company_name = COALESCE($2, company_name),
                  contact_name = COALESCE($3, contact_name),
                  updated_at = now()
              WHERE id = $1
              RETURNING ` + recruiterColumns
	return scanRecruiter(r.db.QueryRow(ctx, query, id, update.CompanyName, update.ContactName))
}
