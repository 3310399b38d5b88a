package domain

import (
	"context"
	"time"
)

type Recruiter struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	CompanyName string    `json:"companyName"`
	ContactName string    `json:"contactName"`
	Password    string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RecruiterUpdate struct {
	CompanyName *string `json:"companyName"`
	ContactName *string `json:"contactName"`
}

func (u *RecruiterUpdate) IsEmpty() bool {
	return u.CompanyName == nil && u.ContactName == nil
}

type RecruiterRepository interface {
	Create(ctx context.Context, recruiter *Recruiter) error
	GetByID(ctx context.Context, id int64) (*Recruiter, error)
	GetByEmail(ctx context.Context, email string) (*Recruiter, error)
	Update(ctx context.Context, id int64, update *RecruiterUpdate) (*Recruiter, error)
}

type RecruiterUsecase interface {
	GetProfile(ctx context.Context, id int64) (*Recruiter, error)
	UpdateProfile(ctx context.Context, id int64, update *RecruiterUpdate) (*Recruiter, error)
}
