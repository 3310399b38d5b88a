package usecase

import (
	"context"
	"errors"
	"strconv"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"
	"talentai-backend/pkg/authz"
)

type recruiterUsecase struct {
	repo domain.RecruiterRepository
}

func NewRecruiterUsecase(repo domain.RecruiterRepository) domain.RecruiterUsecase {
	return &recruiterUsecase{repo: repo}
}

func (u *recruiterUsecase) GetProfile(ctx context.Context, id int64) (*domain.Recruiter, error) {
	recruiter, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recruiter not found.")
		}
		return nil, apperror.Internal(err)
	}
	return recruiter, nil
}

func (u *recruiterUsecase) UpdateProfile(ctx context.Context, id int64, update *domain.RecruiterUpdate) (*domain.Recruiter, error) {
	ownerID := strconv.FormatInt(id, 10)
	if err := authz.Authorize(ctx, ownerID, "You are not authorized to update this profile."); err != nil {
		return nil, err
	}

	if update.IsEmpty() {
		return nil, nil
	}

	recruiter, err := u.repo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recruiter not found.")
		}
		return nil, apperror.Internal(err)
	}
	return recruiter, nil
}
