package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"talentai-backend/config"
	v1 "talentai-backend/internal/delivery/http/v1"
	"talentai-backend/internal/domain"
	"talentai-backend/internal/usecase"
	"talentai-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories backing the full HTTP stack.

type memTalentRepo struct {
	mu      sync.Mutex
	nextID  int64
	talents map[int64]*domain.Talent
}

func newMemTalentRepo() *memTalentRepo {
	return &memTalentRepo{nextID: 1, talents: map[int64]*domain.Talent{}}
}

func (r *memTalentRepo) Create(_ context.Context, talent *domain.Talent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	talent.ID = r.nextID
	r.nextID++
	r.talents[talent.ID] = talent
	return nil
}

func (r *memTalentRepo) GetByID(_ context.Context, id int64) (*domain.Talent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	talent, ok := r.talents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return talent, nil
}

func (r *memTalentRepo) GetByEmail(_ context.Context, email string) (*domain.Talent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, talent := range r.talents {
		if talent.Email == email {
			return talent, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memTalentRepo) Update(_ context.Context, id int64, update *domain.TalentUpdate) (*domain.Talent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	talent, ok := r.talents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if update.Name != nil {
		talent.Name = *update.Name
	}
	if update.Bio != nil {
		talent.Bio = update.Bio
	}
	if update.Skills != nil {
		talent.Skills = update.Skills
	}
	return talent, nil
}

type memRecruiterRepo struct {
	mu         sync.Mutex
	nextID     int64
	recruiters map[int64]*domain.Recruiter
}

func newMemRecruiterRepo() *memRecruiterRepo {
	return &memRecruiterRepo{nextID: 1, recruiters: map[int64]*domain.Recruiter{}}
}

func (r *memRecruiterRepo) Create(_ context.Context, recruiter *domain.Recruiter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	recruiter.ID = r.nextID
	r.nextID++
	r.recruiters[recruiter.ID] = recruiter
	return nil
}

func (r *memRecruiterRepo) GetByID(_ context.Context, id int64) (*domain.Recruiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recruiter, ok := r.recruiters[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return recruiter, nil
}

func (r *memRecruiterRepo) GetByEmail(_ context.Context, email string) (*domain.Recruiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, recruiter := range r.recruiters {
		if recruiter.Email == email {
			return recruiter, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRecruiterRepo) Update(_ context.Context, id int64, update *domain.RecruiterUpdate) (*domain.Recruiter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recruiter, ok := r.recruiters[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if update.CompanyName != nil {
		recruiter.CompanyName = *update.CompanyName
	}
	if update.ContactName != nil {
		recruiter.ContactName = *update.ContactName
	}
	return recruiter, nil
}

type memJobRepo struct {
	mu     sync.Mutex
	nextID int64
	jobs   map[int64]*domain.Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{nextID: 1, jobs: map[int64]*domain.Job{}}
}

func (r *memJobRepo) Create(_ context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.ID = r.nextID
	r.nextID++
	r.jobs[job.ID] = job
	return nil
}

func (r *memJobRepo) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return job, nil
}

func (r *memJobRepo) UpdateStatus(_ context.Context, id int64, status string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	job.Status = status
	return job, nil
}

type memAssignmentRepo struct {
	mu          sync.Mutex
	assignments []*domain.Assignment
	pastWork    []*domain.PastWork
}

func (r *memAssignmentRepo) Create(_ context.Context, assignment *domain.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignment.ID = int64(len(r.assignments) + 1)
	r.assignments = append(r.assignments, assignment)
	return nil
}

func (r *memAssignmentRepo) CreatePastWork(_ context.Context, pastWork *domain.PastWork) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pastWork.ID = int64(len(r.pastWork) + 1)
	r.pastWork = append(r.pastWork, pastWork)
	return nil
}

type testEnv struct {
	router      *gin.Engine
	assignments *memAssignmentRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	talentRepo := newMemTalentRepo()
	recruiterRepo := newMemRecruiterRepo()
	jobRepo := newMemJobRepo()
	assignmentRepo := &memAssignmentRepo{}

	codec := token.NewCodec("e2e-secret", 60)
	validate := validator.New()

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      usecase.NewAuthUsecase(talentRepo, recruiterRepo, codec, validate),
		TalentUC:    usecase.NewTalentUsecase(talentRepo),
		RecruiterUC: usecase.NewRecruiterUsecase(recruiterRepo),
		JobUC:       usecase.NewJobUsecase(jobRepo, talentRepo, assignmentRepo),
		Codec:       codec,
		Config: &config.Config{
			RateLimitWindowSeconds:  60,
			RateLimitLoginThreshold: 1000,
		},
	})

	return &testEnv{router: router, assignments: assignmentRepo}
}

func (e *testEnv) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) signupTalent(t *testing.T, email, name string) int64 {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/talent/signup", "", gin.H{
		"email": email, "name": name, "password": "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var talent domain.Talent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &talent))
	return talent.ID
}

func (e *testEnv) loginTalent(t *testing.T, email string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/talent/login", "", gin.H{
		"email": email, "password": "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func (e *testEnv) signupRecruiter(t *testing.T, email string) int64 {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/recruiter/signup", "", gin.H{
		"email": email, "companyName": "Acme", "contactName": "Bob", "password": "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var recruiter domain.Recruiter
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recruiter))
	return recruiter.ID
}

func (e *testEnv) loginRecruiter(t *testing.T, email string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/recruiter/login", "", gin.H{
		"email": email, "password": "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Talent      json.RawMessage `json:"talent"`
		AccessToken string          `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// The recruiter record rides under the "talent" key; clients depend on it
	require.NotEmpty(t, resp.Talent)
	return resp.AccessToken
}

func TestProfileUpdateOwnFlow(t *testing.T) {
	env := newTestEnv(t)

	id := env.signupTalent(t, "alice@example.com", "Alice")
	tok := env.loginTalent(t, "alice@example.com")

	w := env.do(t, http.MethodPatch, fmt.Sprintf("/api/auth/talent/%d", id), tok, gin.H{
		"bio": "Senior gopher",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Senior gopher")
}

func TestProfileUpdateForeignProfileForbidden(t *testing.T) {
	env := newTestEnv(t)

	env.signupTalent(t, "alice@example.com", "Alice")
	victim := env.signupTalent(t, "bob@example.com", "Bob")
	tok := env.loginTalent(t, "alice@example.com")

	w := env.do(t, http.MethodPatch, fmt.Sprintf("/api/auth/talent/%d", victim), tok, gin.H{
		"bio": "pwned",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"detail": "You are not authorized to update this profile."}`, w.Body.String())
}

func TestProtectedEndpointGarbageToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/auth/talent/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail": "Invalid token"}`, w.Body.String())
}

func TestLoginPathNeedsNoToken(t *testing.T) {
	env := newTestEnv(t)
	env.signupTalent(t, "alice@example.com", "Alice")

	// No Authorization header at all: the auth gate lets the request through
	// and the handler itself decides (here: bad credentials, not a gate 401).
	w := env.do(t, http.MethodPost, "/api/auth/talent/login", "", gin.H{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail": "Invalid credentials"}`, w.Body.String())
}

func TestTalentMe(t *testing.T) {
	env := newTestEnv(t)

	env.signupTalent(t, "alice@example.com", "Alice")
	tok := env.loginTalent(t, "alice@example.com")

	w := env.do(t, http.MethodGet, "/api/auth/talent/me", tok, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var talent domain.Talent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &talent))
	assert.Equal(t, "Alice", talent.Name)
	assert.Equal(t, "alice@example.com", talent.Email)
}

func TestSignupPasswordNeverReturned(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/talent/signup", "", gin.H{
		"email": "alice@example.com", "name": "Alice", "password": "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "pw123456")
}

func TestSignupInvalidEmail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/talent/signup", "", gin.H{
		"email": "not-an-email", "name": "Alice", "password": "pw123456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail": "Invalid email input"}`, w.Body.String())
}

func TestJobLifecycle(t *testing.T) {
	env := newTestEnv(t)

	recruiterID := env.signupRecruiter(t, "bob@acme.com")
	recruiterTok := env.loginRecruiter(t, "bob@acme.com")
	talentID := env.signupTalent(t, "alice@example.com", "Alice")

	// Posting under someone else's recruiter id is rejected
	w := env.do(t, http.MethodPost, "/jobs", recruiterTok, gin.H{
		"title": "Go engineer", "description": "Build things",
		"requiredSkills": []string{"go"}, "recruiterId": fmt.Sprintf("%d", recruiterID+1),
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"detail": "You can only create jobs for your own account."}`, w.Body.String())

	// Posting under own id succeeds
	w = env.do(t, http.MethodPost, "/jobs", recruiterTok, gin.H{
		"title": "Go engineer", "description": "Build things",
		"requiredSkills": []string{"go"}, "recruiterId": fmt.Sprintf("%d", recruiterID),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var job domain.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.Equal(t, domain.JobStatusOpen, job.Status)

	// Another recruiter cannot assign this job
	env.signupRecruiter(t, "eve@rival.com")
	rivalTok := env.loginRecruiter(t, "eve@rival.com")
	w = env.do(t, http.MethodPost, fmt.Sprintf("/jobs/%d/assign", job.ID), rivalTok, gin.H{
		"talentId": talentID,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"detail": "You are not authorized to assign this job."}`, w.Body.String())

	// The owner assigns it to the talent
	w = env.do(t, http.MethodPost, fmt.Sprintf("/jobs/%d/assign", job.ID), recruiterTok, gin.H{
		"talentId": talentID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var assigned domain.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assigned))
	assert.Equal(t, domain.JobStatusAssigned, assigned.Status)

	require.Len(t, env.assignments.assignments, 1)
	assert.Equal(t, domain.AssignmentStatusInProgress, env.assignments.assignments[0].Status)
	require.Len(t, env.assignments.pastWork, 1)
	assert.Nil(t, env.assignments.pastWork[0].CompletionDate)

	// Assigning an unknown talent is a 404
	w = env.do(t, http.MethodPost, fmt.Sprintf("/jobs/%d/assign", job.ID), recruiterTok, gin.H{
		"talentId": talentID + 99,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "Talent not found."}`, w.Body.String())

	// Job details are readable with a talent token too
	talentTok := env.loginTalent(t, "alice@example.com")
	w = env.do(t, http.MethodGet, fmt.Sprintf("/jobs/%d", job.ID), talentTok, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/jobs/999", talentTok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "Job not found."}`, w.Body.String())
}

func TestDuplicateSignupConflict(t *testing.T) {
	env := newTestEnv(t)
	env.signupTalent(t, "alice@example.com", "Alice")

	// The in-memory repo does not enforce uniqueness; the postgres repo maps
	// 23505 to a 409. Here we only check the route stays reachable twice.
	w := env.do(t, http.MethodPost, "/api/auth/talent/signup", "", gin.H{
		"email": "alice@example.com", "name": "Alice", "password": "pw123456",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
