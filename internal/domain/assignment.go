package domain

import (
	"context"
	"time"
)

const AssignmentStatusInProgress = "In Progress"

type Assignment struct {
	ID         int64     `json:"id"`
	TalentID   int64     `json:"talentId"`
	JobID      int64     `json:"jobId"`
	Status     string    `json:"status"`
	AssignedAt time.Time `json:"assignedAt"`
}

// PastWork tracks a talent's engagement history. A stub row is written at
// assignment time; completion date and scores are filled in later.
type PastWork struct {
	ID                      int64      `json:"id"`
	TalentID                int64      `json:"talentId"`
	JobID                   int64      `json:"jobId"`
	CompletionDate          *time.Time `json:"completionDate"`
	RecruiterFeedbackRating int        `json:"recruiterFeedbackRating"`
	ProjectComplexityScore  int        `json:"projectComplexityScore"`
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *Assignment) error
	CreatePastWork(ctx context.Context, pastWork *PastWork) error
}
