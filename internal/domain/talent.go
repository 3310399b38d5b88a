package domain

import (
	"context"
	"time"
)

type Talent struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Password     string    `json:"-"`
	Region       *string   `json:"region"`
	Availability *string   `json:"availability"`
	Skills       []string  `json:"skills"`
	TalentScore  *int      `json:"talentScore"`
	Bio          *string   `json:"bio"`
	ResumeURL    *string   `json:"resumeUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TalentUpdate carries a partial profile update. Nil fields are left untouched.
type TalentUpdate struct {
	Name         *string  `json:"name"`
	Region       *string  `json:"region"`
	Availability *string  `json:"availability"`
	Skills       []string `json:"skills"`
	Bio          *string  `json:"bio"`
	ResumeURL    *string  `json:"resumeUrl"`
}

// IsEmpty reports whether the update would change nothing.
func (u *TalentUpdate) IsEmpty() bool {
	return u.Name == nil && u.Region == nil && u.Availability == nil &&
		u.Skills == nil && u.Bio == nil && u.ResumeURL == nil
}

type TalentRepository interface {
	Create(ctx context.Context, talent *Talent) error
	GetByID(ctx context.Context, id int64) (*Talent, error)
	GetByEmail(ctx context.Context, email string) (*Talent, error)
	Update(ctx context.Context, id int64, update *TalentUpdate) (*Talent, error)
}

type TalentUsecase interface {
	GetProfile(ctx context.Context, id int64) (*Talent, error)
	UpdateProfile(ctx context.Context, id int64, update *TalentUpdate) (*Talent, error)
}
