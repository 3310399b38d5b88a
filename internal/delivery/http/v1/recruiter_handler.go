package v1

import (
	"net/http"
	"strconv"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"
	"talentai-backend/pkg/authz"

	"github.com/gin-gonic/gin"
)

type RecruiterHandler struct {
	recruiterUC domain.RecruiterUsecase
}

func NewRecruiterHandler(r *gin.RouterGroup, recruiterUC domain.RecruiterUsecase) {
	handler := &RecruiterHandler{recruiterUC: recruiterUC}

	recruiter := r.Group("/auth/recruiter")
	{
		recruiter.GET("/me", handler.Me)
		recruiter.PATCH("/:id", handler.Update)
	}
}

// Me godoc
// @Summary      Current recruiter profile
// @Tags         recruiters
// @Produce      json
// @Success      200  {object}  domain.Recruiter
// @Failure      401  {object}  response.Detail
// @Failure      404  {object}  response.Detail
// @Router       /api/auth/recruiter/me [get]
// @Security     BearerAuth
func (h *RecruiterHandler) Me(c *gin.Context) {
	identity, ok := authz.FromContext(c.Request.Context())
	if !ok {
		c.Error(apperror.Forbidden("Not authenticated or invalid token."))
		return
	}

	id, err := strconv.ParseInt(identity.ID, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid subject id in token"))
		return
	}

	recruiter, err := h.recruiterUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recruiter)
}

// Update godoc
// @Summary      Update recruiter profile
// @Tags         recruiters
// @Accept       json
// @Produce      json
// @Param        id      path      int                     true  "Recruiter ID"
// @Param        update  body      domain.RecruiterUpdate  true  "Fields to update"
// @Success      200     {object}  domain.Recruiter
// @Failure      401     {object}  response.Detail
// @Failure      403     {object}  response.Detail
// @Failure      404     {object}  response.Detail
// @Router       /api/auth/recruiter/{id} [patch]
// @Security     BearerAuth
func (h *RecruiterHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid recruiter id"))
		return
	}

	var update domain.RecruiterUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	recruiter, err := h.recruiterUC.UpdateProfile(c.Request.Context(), id, &update)
	if err != nil {
		c.Error(err)
		return
	}
	if recruiter == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, recruiter)
}
