package domain

import "context"

// AuthUsecase covers signup and login for both account kinds. Login returns
// the stored record together with a freshly minted access token.
type AuthUsecase interface {
	TalentSignup(ctx context.Context, talent *Talent) error
	TalentLogin(ctx context.Context, email, password string) (*Talent, string, error)
	RecruiterSignup(ctx context.Context, recruiter *Recruiter) error
	RecruiterLogin(ctx context.Context, email, password string) (*Recruiter, string, error)
}
