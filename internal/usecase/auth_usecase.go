package usecase

import (
	"context"
	"errors"
	"strconv"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"
	"talentai-backend/pkg/hash"
	"talentai-backend/pkg/token"

	"github.com/go-playground/validator/v10"
)

type authUsecase struct {
	talentRepo    domain.TalentRepository
	recruiterRepo domain.RecruiterRepository
	codec         *token.Codec
	validate      *validator.Validate
}

func NewAuthUsecase(talentRepo domain.TalentRepository, recruiterRepo domain.RecruiterRepository, codec *token.Codec, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		talentRepo:    talentRepo,
		recruiterRepo: recruiterRepo,
		codec:         codec,
		validate:      validate,
	}
}

func (u *authUsecase) TalentSignup(ctx context.Context, talent *domain.Talent) error {
	if err := u.validate.Var(talent.Email, "required,email"); err != nil {
		return apperror.BadRequest("Invalid email input")
	}

	hashed, err := hash.Password(talent.Password)
	if err != nil {
		return apperror.Internal(err)
	}
	talent.Password = hashed

	return u.talentRepo.Create(ctx, talent)
}

func (u *authUsecase) TalentLogin(ctx context.Context, email, password string) (*domain.Talent, string, error) {
	talent, err := u.talentRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid credentials")
		}
		return nil, "", apperror.Internal(err)
	}

	if err := hash.Compare(talent.Password, password); err != nil {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	accessToken, err := u.codec.Issue(strconv.FormatInt(talent.ID, 10), talent.Name)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return talent, accessToken, nil
}

func (u *authUsecase) RecruiterSignup(ctx context.Context, recruiter *domain.Recruiter) error {
	if err := u.validate.Var(recruiter.Email, "required,email"); err != nil {
		return apperror.BadRequest("Invalid email input")
	}

	hashed, err := hash.Password(recruiter.Password)
	if err != nil {
		return apperror.Internal(err)
	}
	recruiter.Password = hashed

	return u.recruiterRepo.Create(ctx, recruiter)
}

func (u *authUsecase) RecruiterLogin(ctx context.Context, email, password string) (*domain.Recruiter, string, error) {
	recruiter, err := u.recruiterRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid credentials")
		}
		return nil, "", apperror.Internal(err)
	}

	if err := hash.Compare(recruiter.Password, password); err != nil {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	// The recruiter token carries the contact name as its display name.
	accessToken, err := u.codec.Issue(strconv.FormatInt(recruiter.ID, 10), recruiter.ContactName)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return recruiter, accessToken, nil
}
