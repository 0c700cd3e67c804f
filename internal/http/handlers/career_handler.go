package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/services"
)

// GenerateCareersRequest describes the person careers are recommended for.
type GenerateCareersRequest struct {
	Skills         []string `json:"skills" binding:"required,min=1,max=100,dive,notblank,max=100" example:"Python,SQL"`
	Interests      []string `json:"interests" binding:"omitempty,max=100,dive,max=100" example:"data,finance"`
	EducationLevel string   `json:"educationLevel" binding:"max=128" example:"bachelor"`
	Experience     string   `json:"experience" binding:"max=2000" example:"3 years as a backend developer"`
}

// GenerateCareers godoc
// @ID          generateCareers
// @Summary     Generate career recommendations
// @Description Asks the AI for matching careers and stores them for the session user. fitScore is clamped to 0..100.
// @Tags        Careers
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       body  body  handlers.GenerateCareersRequest  true  "Profile"
//
// @Success     200  {array}   domain.Career
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Not authenticated"
// @Failure     500  {object}  handlers.ErrorResponse  "AI service failure"
// @Router      /careers/generate [post]
func (h *Handlers) GenerateCareers(c *gin.Context) {
	var req GenerateCareersRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.careers.Generate(c.Request.Context(), userID(c), services.CareerInput{
		Skills:         req.Skills,
		Interests:      req.Interests,
		EducationLevel: req.EducationLevel,
		Experience:     req.Experience,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nonNil(out))
}

// ListCareers godoc
// @ID          listCareers
// @Summary     List career recommendations
// @Tags        Careers
// @Produce     json
// @Security    SessionCookie
//
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
//
// @Success     200  {array}   domain.Career
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string  "Not Modified"
// @Failure     401  {object}  handlers.ErrorResponse  "Not authenticated"
// @Router      /careers [get]
func (h *Handlers) ListCareers(c *gin.Context) {
	uid := userID(c)
	if h.notModified(c, "careers", "", uid) {
		return
	}
	out, err := h.careers.List(c.Request.Context(), uid)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nonNil(out))
}
