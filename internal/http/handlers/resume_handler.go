package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/services"
)

// CreateResumeRequest is the JSON payload for creating a resume.
type CreateResumeRequest struct {
	Title           string `json:"title" binding:"max=255" example:"Backend resume"`
	OriginalContent string `json:"originalContent" binding:"required,notblank" example:"Jane Doe. Go developer..."`
	TargetRole      string `json:"targetRole" binding:"max=255" example:"Staff Engineer"`
	Status          string `json:"status" binding:"max=64" example:"draft"`
}

// UpdateResumeRequest is the JSON payload for PATCH /resumes/{id}.
type UpdateResumeRequest struct {
	Title            *string   `json:"title" binding:"omitempty,max=255"`
	OriginalContent  *string   `json:"originalContent" binding:"omitempty,notblank"`
	OptimizedContent *string   `json:"optimizedContent"`
	AISuggestions    *[]string `json:"aiSuggestions" binding:"omitempty,max=100"`
	TargetRole       *string   `json:"targetRole" binding:"omitempty,max=255"`
	Status           *string   `json:"status" binding:"omitempty,max=64"`
}

// OptimizeResumeRequest tunes an optimization. The body may be omitted.
type OptimizeResumeRequest struct {
	TargetRole     string `json:"targetRole" binding:"max=255" example:"Data Engineer"`
	JobDescription string `json:"jobDescription" binding:"max=20000"`
}

// CreateResume godoc
// @ID          createResume
// @Summary     Create a resume
// @Tags        Resumes
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       body  body  handlers.CreateResumeRequest  true  "Resume"
//
// @Success     201  {object}  domain.Resume
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Router      /resumes [post]
func (h *Handlers) CreateResume(c *gin.Context) {
	var req CreateResumeRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.resumes.Create(c.Request.Context(), userID(c), services.ResumeInput{
		Title:           req.Title,
		OriginalContent: req.OriginalContent,
		TargetRole:      req.TargetRole,
		Status:          req.Status,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, r)
}

// ListResumes godoc
// @ID          listResumes
// @Summary     List resumes
// @Tags        Resumes
// @Produce     json
// @Security    SessionCookie
//
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
//
// @Success     200  {array}   domain.Resume
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string  "Not Modified"
// @Router      /resumes [get]
func (h *Handlers) ListResumes(c *gin.Context) {
	uid := userID(c)
	if h.notModified(c, "resumes", "", uid) {
		return
	}
	out, err := h.resumes.List(c.Request.Context(), uid)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nonNil(out))
}

// GetResume godoc
// @ID          getResume
// @Summary     Get a resume
// @Tags        Resumes
// @Produce     json
// @Security    SessionCookie
//
// @Param       id  path  int  true  "Resume ID"  minimum(1)
//
// @Success     200  {object}  domain.Resume
// @Failure     404  {object}  handlers.ErrorResponse  "Resume not found"
// @Router      /resumes/{id} [get]
func (h *Handlers) GetResume(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	r, err := h.resumes.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, r)
}

// UpdateResume godoc
// @ID          updateResume
// @Summary     Update a resume
// @Tags        Resumes
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       id    path  int                           true  "Resume ID"  minimum(1)
// @Param       body  body  handlers.UpdateResumeRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.Resume
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     404  {object}  handlers.ErrorResponse  "Resume not found"
// @Router      /resumes/{id} [patch]
func (h *Handlers) UpdateResume(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	var req UpdateResumeRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.resumes.Update(c.Request.Context(), userID(c), id, services.ResumePatch{
		Title:            req.Title,
		OriginalContent:  req.OriginalContent,
		OptimizedContent: req.OptimizedContent,
		AISuggestions:    req.AISuggestions,
		TargetRole:       req.TargetRole,
		Status:           req.Status,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, r)
}

// OptimizeResume godoc
// @ID          optimizeResume
// @Summary     Optimize a resume with AI
// @Description Rewrites the resume for the target role, stores the result with its suggestions and marks it optimized. An AI failure leaves the resume unchanged.
// @Tags        Resumes
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       id    path  int                             true   "Resume ID"  minimum(1)
// @Param       body  body  handlers.OptimizeResumeRequest  false  "Optimization hints"
//
// @Success     200  {object}  domain.Resume
// @Failure     404  {object}  handlers.ErrorResponse  "Resume not found"
// @Failure     500  {object}  handlers.ErrorResponse  "AI service failure"
// @Router      /resumes/{id}/optimize [post]
func (h *Handlers) OptimizeResume(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	var req OptimizeResumeRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	r, err := h.resumes.Optimize(c.Request.Context(), userID(c), id, services.OptimizeInput{
		TargetRole:     req.TargetRole,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, r)
}
