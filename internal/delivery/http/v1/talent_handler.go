package v1

import (
	"net/http"
	"strconv"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"
	"talentai-backend/pkg/authz"

	"github.com/gin-gonic/gin"
)

type TalentHandler struct {
	talentUC domain.TalentUsecase
}

func NewTalentHandler(r *gin.RouterGroup, talentUC domain.TalentUsecase) {
	handler := &TalentHandler{talentUC: talentUC}

	talent := r.Group("/auth/talent")
	{
		talent.GET("/me", handler.Me)
		talent.PATCH("/:id", handler.Update)
	}
}

// Me godoc
// @Summary      Current talent profile
// @Description  Profile of the authenticated talent, resolved from the token
// @Tags         talents
// @Produce      json
// @Success      200  {object}  domain.Talent
// @Failure      401  {object}  response.Detail
// @Failure      404  {object}  response.Detail
// @Router       /api/auth/talent/me [get]
// @Security     BearerAuth
func (h *TalentHandler) Me(c *gin.Context) {
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

	talent, err := h.talentUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, talent)
}

// Update godoc
// @Summary      Update talent profile
// @Description  Partial update; only the authenticated owner may update
// @Tags         talents
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Talent ID"
// @Param        update  body      domain.TalentUpdate  true  "Fields to update"
// @Success      200     {object}  domain.Talent
// @Failure      401     {object}  response.Detail
// @Failure      403     {object}  response.Detail
// @Failure      404     {object}  response.Detail
// @Router       /api/auth/talent/{id} [patch]
// @Security     BearerAuth
func (h *TalentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid talent id"))
		return
	}

	var update domain.TalentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	talent, err := h.talentUC.UpdateProfile(c.Request.Context(), id, &update)
	if err != nil {
		c.Error(err)
		return
	}
	if talent == nil {
		// Empty update payload: nothing changed
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, talent)
}
