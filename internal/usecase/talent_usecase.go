package usecase

import (
	"context"
	"errors"
	"strconv"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"
	"talentai-backend/pkg/authz"
)

type talentUsecase struct {
	repo domain.TalentRepository
}

func NewTalentUsecase(repo domain.TalentRepository) domain.TalentUsecase {
	return &talentUsecase{repo: repo}
}

func (u *talentUsecase) GetProfile(ctx context.Context, id int64) (*domain.Talent, error) {
	talent, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Talent not found.")
		}
		return nil, apperror.Internal(err)
	}
	return talent, nil
}

func (u *talentUsecase) UpdateProfile(ctx context.Context, id int64, update *domain.TalentUpdate) (*domain.Talent, error) {
	// Ownership check before any mutation: the authenticated subject must be
	// the profile being updated.
	ownerID := strconv.FormatInt(id, 10)
	if err := authz.Authorize(ctx, ownerID, "You are not authorized to update this profile."); err != nil {
		return nil, err
	}

	// Nothing to update
	if update.IsEmpty() {
		return nil, nil
	}

	talent, err := u.repo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Talent not found.")
		}
		return nil, apperror.Internal(err)
	}
	return talent, nil
}
