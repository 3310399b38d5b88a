package domain

import (
	"context"
	"time"
)

// Job statuses. A job starts Open and becomes Assigned once a talent is
// matched to it.
const (
	JobStatusOpen     = "Open"
	JobStatusAssigned = "Assigned"
)

type Job struct {
	ID                      int64     `json:"id"`
	RecruiterID             int64     `json:"recruiterId"`
	Title                   string    `json:"title"`
	Description             string    `json:"description"`
	RequiredSkills          []string  `json:"requiredSkills"`
	RequiredRegion          *string   `json:"requiredRegion"`
	AvailabilityRequirement *string   `json:"availabilityRequirement"`
	Status                  string    `json:"status"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Job, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	AssignJob(ctx context.Context, jobID, talentID int64) (*Job, error)
}
