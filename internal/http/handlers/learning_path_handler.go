package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/services"
)

// CreateLearningPathRequest is the JSON payload for creating a learning path.
// The skill is given by skillId or, failing that, by skillName, which reuses a
// same-named skill of the caller or creates one.
type CreateLearningPathRequest struct {
	SkillID     uint   `json:"skillId" binding:"required_without=SkillName" example:"3"`
	SkillName   string `json:"skillName" binding:"max=255" example:"SQL"`
	CourseTitle string `json:"courseTitle" binding:"required,notblank,max=255" example:"Databases for Data Science"`
	Platform    string `json:"platform" binding:"max=128" example:"Coursera"`
	Cost        string `json:"cost" binding:"max=64" example:"free"`
	Duration    string `json:"duration" binding:"max=64" example:"4 weeks"`
	URL         string `json:"url" binding:"omitempty,url,max=2048" example:"https://coursera.org/learn/sql"`
	Status      string `json:"status" binding:"omitempty,pathstatus" example:"not_started"`
}

// UpdateLearningPathRequest is the JSON payload for PATCH /learning-paths/{id}.
type UpdateLearningPathRequest struct {
	CourseTitle *string `json:"courseTitle" binding:"omitempty,notblank,max=255"`
	Platform    *string `json:"platform" binding:"omitempty,max=128"`
	Cost        *string `json:"cost" binding:"omitempty,max=64"`
	Duration    *string `json:"duration" binding:"omitempty,max=64"`
	URL         *string `json:"url" binding:"omitempty,url,max=2048"`
	Status      *string `json:"status" binding:"omitempty,pathstatus" example:"in_progress"`
}

// CreateLearningPath godoc
// @ID          createLearningPath
// @Summary     Create a learning path
// @Description The referenced skill must belong to the session user.
// @Tags        LearningPaths
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       body  body  handlers.CreateLearningPathRequest  true  "Learning path"
//
// @Success     201  {object}  domain.LearningPath
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed or foreign skill"
// @Router      /learning-paths [post]
func (h *Handlers) CreateLearningPath(c *gin.Context) {
	var req CreateLearningPathRequest
	if !bindJSON(c, &req) {
		return
	}
	lp, err := h.paths.Create(c.Request.Context(), userID(c), services.LearningPathInput{
		SkillID:     req.SkillID,
		SkillName:   req.SkillName,
		CourseTitle: req.CourseTitle,
		Platform:    req.Platform,
		Cost:        req.Cost,
		Duration:    req.Duration,
		URL:         req.URL,
		Status:      req.Status,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, lp)
}

// ListLearningPaths godoc
// @ID          listLearningPaths
// @Summary     List learning paths
// @Tags        LearningPaths
// @Produce     json
// @Security    SessionCookie
//
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
//
// @Success     200  {array}   domain.LearningPath
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string  "Not Modified"
// @Router      /learning-paths [get]
func (h *Handlers) ListLearningPaths(c *gin.Context) {
	uid := userID(c)
	if h.notModified(c, "learning-paths", "", uid) {
		return
	}
	out, err := h.paths.List(c.Request.Context(), uid)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nonNil(out))
}

// GetLearningPath godoc
// @ID          getLearningPath
// @Summary     Get a learning path
// @Tags        LearningPaths
// @Produce     json
// @Security    SessionCookie
//
// @Param       id  path  int  true  "Learning path ID"  minimum(1)
//
// @Success     200  {object}  domain.LearningPath
// @Failure     404  {object}  handlers.ErrorResponse  "Learning path not found"
// @Router      /learning-paths/{id} [get]
func (h *Handlers) GetLearningPath(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	lp, err := h.paths.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, lp)
}

// UpdateLearningPath godoc
// @ID          updateLearningPath
// @Summary     Update a learning path
// @Description Status may move between not_started, in_progress and completed in any order.
// @Tags        LearningPaths
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       id    path  int                                 true  "Learning path ID"  minimum(1)
// @Param       body  body  handlers.UpdateLearningPathRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.LearningPath
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     404  {object}  handlers.ErrorResponse  "Learning path not found"
// @Router      /learning-paths/{id} [patch]
func (h *Handlers) UpdateLearningPath(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	var req UpdateLearningPathRequest
	if !bindJSON(c, &req) {
		return
	}
	lp, err := h.paths.Update(c.Request.Context(), userID(c), id, services.LearningPathPatch{
		CourseTitle: req.CourseTitle,
		Platform:    req.Platform,
		Cost:        req.Cost,
		Duration:    req.Duration,
		URL:         req.URL,
		Status:      req.Status,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, lp)
}
