package usecase

import (
	"context"
	"errors"
	"strconv"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"
	"talentai-backend/pkg/authz"
)

type jobUsecase struct {
	jobRepo        domain.JobRepository
	talentRepo     domain.TalentRepository
	assignmentRepo domain.AssignmentRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, talentRepo domain.TalentRepository, assignmentRepo domain.AssignmentRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:        jobRepo,
		talentRepo:     talentRepo,
		assignmentRepo: assignmentRepo,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	// A recruiter can only post jobs under their own account.
	ownerID := strconv.FormatInt(job.RecruiterID, 10)
	if err := authz.Authorize(ctx, ownerID, "You can only create jobs for your own account."); err != nil {
		return err
	}

	// Business Validation
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Description == "" {
		return apperror.BadRequest("Description is required")
	}

	job.Status = domain.JobStatusOpen

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found.")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// AssignJob matches a talent to a job. Only the recruiter who posted the job
// may assign it. On success an assignment record and a past-work stub are
// written and the job status flips to Assigned.
func (u *jobUsecase) AssignJob(ctx context.Context, jobID, talentID int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found.")
		}
		return nil, apperror.Internal(err)
	}

	ownerID := strconv.FormatInt(job.RecruiterID, 10)
	if err := authz.Authorize(ctx, ownerID, "You are not authorized to assign this job."); err != nil {
		return nil, err
	}

	if _, err := u.talentRepo.GetByID(ctx, talentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Talent not found.")
		}
		return nil, apperror.Internal(err)
	}

	assignment := &domain.Assignment{
		TalentID: talentID,
		JobID:    jobID,
		Status:   domain.AssignmentStatusInProgress,
	}
	if err := u.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	updated, err := u.jobRepo.UpdateStatus(ctx, jobID, domain.JobStatusAssigned)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Completion date and scores are filled in when the engagement ends.
	pastWork := &domain.PastWork{
		TalentID: talentID,
		JobID:    jobID,
	}
	if err := u.assignmentRepo.CreatePastWork(ctx, pastWork); err != nil {
		return nil, err
	}

	return updated, nil
}
