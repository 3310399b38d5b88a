package v1

import (
	"net/http"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	talent := r.Group("/auth/talent")
	{
		talent.POST("/signup", handler.TalentSignup)
		talent.POST("/login", loginLimiter, handler.TalentLogin)
	}

	recruiter := r.Group("/auth/recruiter")
	{
		recruiter.POST("/signup", handler.RecruiterSignup)
		recruiter.POST("/login", loginLimiter, handler.RecruiterLogin)
	}
}

type TalentSignupRequest struct {
	Email        string   `json:"email" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Password     string   `json:"password" binding:"required"`
	Region       *string  `json:"region"`
	Availability *string  `json:"availability"`
	Skills       []string `json:"skills"`
	TalentScore  *int     `json:"talentScore"`
	Bio          *string  `json:"bio"`
	ResumeURL    *string  `json:"resumeUrl"`
}

type RecruiterSignupRequest struct {
	Email       string `json:"email" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
	ContactName string `json:"contactName" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TalentLoginResponse mirrors the response shape clients already depend on.
type TalentLoginResponse struct {
	Talent      *domain.Talent `json:"talent"`
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
}

// RecruiterLoginResponse labels the recruiter record under the "talent" field.
// That is how the service has always responded and the frontend reads it, so
// the name stays.
type RecruiterLoginResponse struct {
	Talent      *domain.Recruiter `json:"talent"`
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
}

// TalentSignup godoc
// @Summary      Talent registration
// @Description  Register a new talent account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        talent  body      TalentSignupRequest  true  "Talent details"
// @Success      200     {object}  domain.Talent
// @Failure      400     {object}  response.Detail
// @Failure      409     {object}  response.Detail
// @Router       /api/auth/talent/signup [post]
func (h *AuthHandler) TalentSignup(c *gin.Context) {
	var req TalentSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	talent := &domain.Talent{
		Email:        req.Email,
		Name:         req.Name,
		Password:     req.Password,
		Region:       req.Region,
		Availability: req.Availability,
		Skills:       req.Skills,
		TalentScore:  req.TalentScore,
		Bio:          req.Bio,
		ResumeURL:    req.ResumeURL,
	}

	if err := h.authUC.TalentSignup(c.Request.Context(), talent); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, talent)
}

// TalentLogin godoc
// @Summary      Talent login
// @Description  Verify credentials and mint an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200          {object}  TalentLoginResponse
// @Failure      401          {object}  response.Detail
// @Router       /api/auth/talent/login [post]
func (h *AuthHandler) TalentLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	talent, accessToken, err := h.authUC.TalentLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, TalentLoginResponse{
		Talent:      talent,
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}

// RecruiterSignup godoc
// @Summary      Recruiter registration
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        recruiter  body      RecruiterSignupRequest  true  "Recruiter details"
// @Success      200        {object}  domain.Recruiter
// @Failure      400        {object}  response.Detail
// @Failure      409        {object}  response.Detail
// @Router       /api/auth/recruiter/signup [post]
func (h *AuthHandler) RecruiterSignup(c *gin.Context) {
	var req RecruiterSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	recruiter := &domain.Recruiter{
		Email:       req.Email,
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Password:    req.Password,
	}

	if err := h.authUC.RecruiterSignup(c.Request.Context(), recruiter); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recruiter)
}

// RecruiterLogin godoc
// @Summary      Recruiter login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200          {object}  RecruiterLoginResponse
// @Failure      401          {object}  response.Detail
// @Router       /api/auth/recruiter/login [post]
func (h *AuthHandler) RecruiterLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	recruiter, accessToken, err := h.authUC.RecruiterLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, RecruiterLoginResponse{
		Talent:      recruiter,
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
}
