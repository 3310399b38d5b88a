package v1

import (
	"net/http"
	"strconv"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.POST("", handler.Create)
		jobs.GET("/:id", handler.GetDetails)
		jobs.POST("/:id/assign", handler.Assign)
	}
}

type CreateJobRequest struct {
	Title                   string   `json:"title" binding:"required"`
	Description             string   `json:"description" binding:"required"`
	RequiredSkills          []string `json:"requiredSkills" binding:"required"`
	RequiredRegion          *string  `json:"requiredRegion"`
	AvailabilityRequirement *string  `json:"availabilityRequirement"`
	RecruiterID             string   `json:"recruiterId" binding:"required"`
}

type AssignJobRequest struct {
	TalentID int64 `json:"talentId" binding:"required"`
}

// Create godoc
// @Summary      Create a job posting
// @Description  Only the authenticated recruiter may post under their own id
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job details"
// @Success      201  {object}  domain.Job
// @Failure      400  {object}  response.Detail
// @Failure      401  {object}  response.Detail
// @Failure      403  {object}  response.Detail
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	recruiterID, err := strconv.ParseInt(req.RecruiterID, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid recruiter id"))
		return
	}

	job := &domain.Job{
		RecruiterID:             recruiterID,
		Title:                   req.Title,
		Description:             req.Description,
		RequiredSkills:          req.RequiredSkills,
		RequiredRegion:          req.RequiredRegion,
		AvailabilityRequirement: req.AvailabilityRequirement,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetDetails godoc
// @Summary      Job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  response.Detail
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// Assign godoc
// @Summary      Assign a job to a talent
// @Description  Only the recruiter who posted the job may assign it
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id          path      int               true  "Job ID"
// @Param        assignment  body      AssignJobRequest  true  "Assignment"
// @Success      200         {object}  domain.Job
// @Failure      403         {object}  response.Detail
// @Failure      404         {object}  response.Detail
// @Router       /jobs/{id}/assign [post]
// @Security     BearerAuth
func (h *JobHandler) Assign(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	var req AssignJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.AssignJob(c.Request.Context(), jobID, req.TalentID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, job)
}
