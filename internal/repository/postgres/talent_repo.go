package postgres

import (
	"context"
	"errors"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const pgUniqueViolation = "23505"

type talentRepo struct {
	db *pgxpool.Pool
}

func NewTalentRepository(db *pgxpool.Pool) domain.TalentRepository {
	return &talentRepo{db: db}
}

const talentColumns = `id, email, name, password, region, availability, skills,
       talent_score, bio, resume_url, created_at, updated_at`

func scanTalent(row pgx.Row) (*domain.Talent, error) {
	var t domain.Talent
	err := row.Scan(
		&t.ID, &t.Email, &t.Name, &t.Password, &t.Region, &t.Availability,
		pq.Array(&t.Skills), &t.TalentScore, &t.Bio, &t.ResumeURL,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *talentRepo) Create(ctx context.Context, talent *domain.Talent) error {
	query := `INSERT INTO talents (email, name, password, region, availability, skills,
                  talent_score, bio, resume_url, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		talent.Email, talent.Name, talent.Password, talent.Region, talent.Availability,
		pq.Array(talent.Skills), talent.TalentScore, talent.Bio, talent.ResumeURL,
	).Scan(&talent.ID, &talent.CreatedAt, &talent.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Talent with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *talentRepo) GetByID(ctx context.Context, id int64) (*domain.Talent, error) {
	query := `SELECT ` + talentColumns + ` FROM talents WHERE id = $1`
	return scanTalent(r.db.QueryRow(ctx, query, id))
}

func (r *talentRepo) GetByEmail(ctx context.Context, email string) (*domain.Talent, error) {
	query := `SELECT ` + talentColumns + ` FROM talents WHERE email = $1`
	return scanTalent(r.db.QueryRow(ctx, query, email))
}

// Update applies only the non-nil fields and returns the updated record.
// COALESCE keeps omitted fields at their current value.
func (r *talentRepo) Update(ctx context.Context, id int64, update *domain.TalentUpdate) (*domain.Talent, error) {
	query := `UPDATE talents SET
                  name = COALESCE($2, name),
                  region = COALESCE($3, region),
                  availability = COALESCE($4, availability),
                  skills = COALESCE($5, skills),
                  bio = COALESCE($6, bio),
                  resume_url = COALESCE($7, resume_url),
                  updated_at = now()
              WHERE id = $1
              RETURNING ` + talentColumns

	var skills interface{}
	if update.Skills != nil {
		skills = pq.Array(update.Skills)
	}

	return scanTalent(r.db.QueryRow(ctx, query, id,
		update.Name, update.Region, update.Availability, skills,
		update.Bio, update.ResumeURL,
	))
}
