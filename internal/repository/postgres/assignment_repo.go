package postgres

import (
	"context"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type assignmentRepo struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) domain.AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *domain.Assignment) error {
	query := `INSERT INTO assignments (talent_id, job_id, status, assigned_at)
              VALUES ($1, $2, $3, now())
              RETURNING id, assigned_at`
	err := r.db.QueryRow(ctx, query,
		assignment.TalentID, assignment.JobID, assignment.Status,
	).Scan(&assignment.ID, &assignment.AssignedAt)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *assignmentRepo) CreatePastWork(ctx context.Context, pastWork *domain.PastWork) error {
	query := `INSERT INTO past_work (talent_id, job_id, completion_date,
                  recruiter_feedback_rating, project_complexity_score)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`
	err := r.db.QueryRow(ctx, query,
		pastWork.TalentID, pastWork.JobID, pastWork.CompletionDate,
		pastWork.RecruiterFeedbackRating, pastWork.ProjectComplexityScore,
	).Scan(&pastWork.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
