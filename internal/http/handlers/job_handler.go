package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/services"
)

// MatchJobsRequest describes the candidate to match jobs for.
type MatchJobsRequest struct {
	UserSkills     []string `json:"userSkills" binding:"required,min=1,max=100,dive,notblank,max=100" example:"Go,PostgreSQL"`
	UserExperience string   `json:"userExperience" binding:"max=2000" example:"5 years backend"`
	Preferences    string   `json:"preferences" binding:"max=2000" example:"remote, EU time zones"`
}

// UpdateJobRequest is the JSON payload for PATCH /jobs/{id}.
type UpdateJobRequest struct {
	IsSaved           *bool   `json:"isSaved" example:"true"`
	ApplicationStatus *string `json:"applicationStatus" binding:"omitempty,max=64" example:"applied"`
}

// MatchJobs godoc
// @ID          matchJobs
// @Summary     Match job opportunities
// @Description Asks the AI for matching jobs and stores them. matchPercentage is clamped to 0..100; matchTier is derived when the AI omits it.
// @Tags        Jobs
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       body  body  handlers.MatchJobsRequest  true  "Candidate"
//
// @Success     200  {array}   domain.Job
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "AI service failure"
// @Router      /jobs/match [post]
func (h *Handlers) MatchJobs(c *gin.Context) {
	var req MatchJobsRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.jobs.Match(c.Request.Context(), userID(c), services.MatchInput{
		UserSkills:     req.UserSkills,
		UserExperience: req.UserExperience,
		Preferences:    req.Preferences,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nonNil(out))
}

// ListJobs godoc
// @ID          listJobs
// @Summary     List jobs
// @Tags        Jobs
// @Produce     json
// @Security    SessionCookie
//
// @Param       saved          query   bool    false  "Only saved (true) or unsaved (false) jobs"
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
//
// @Success     200  {array}   domain.Job
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string  "Not Modified"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad saved filter"
// @Router      /jobs [get]
func (h *Handlers) ListJobs(c *gin.Context) {
	var saved *bool
	variant := ""
	if raw, present := c.GetQuery("saved"); present {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			failDetails(c, http.StatusBadRequest, ErrCodeValidation, "request validation failed",
				[]FieldError{{Field: "saved", Rule: "boolean", Message: "must be true or false"}})
			return
		}
		saved = &v
		variant = "saved=" + strconv.FormatBool(v)
	}

	uid := userID(c)
	if h.notModified(c, "jobs", variant, uid) {
		return
	}
	out, err := h.jobs.List(c.Request.Context(), uid, saved)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nonNil(out))
}

// GetJob godoc
// @ID          getJob
// @Summary     Get a job
// @Tags        Jobs
// @Produce     json
// @Security    SessionCookie
//
// @Param       id  path  int  true  "Job ID"  minimum(1)
//
// @Success     200  {object}  domain.Job
// @Failure     404  {object}  handlers.ErrorResponse  "Job not found"
// @Router      /jobs/{id} [get]
func (h *Handlers) GetJob(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	j, err := h.jobs.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, j)
}

// UpdateJob godoc
// @ID          updateJob
// @Summary     Save a job or track its application
// @Tags        Jobs
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       id    path  int                        true  "Job ID"  minimum(1)
// @Param       body  body  handlers.UpdateJobRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.Job
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     404  {object}  handlers.ErrorResponse  "Job not found"
// @Router      /jobs/{id} [patch]
func (h *Handlers) UpdateJob(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	var req UpdateJobRequest
	if !bindJSON(c, &req) {
		return
	}
	j, err := h.jobs.Update(c.Request.Context(), userID(c), id, services.JobPatch{
		IsSaved:           req.IsSaved,
		ApplicationStatus: req.ApplicationStatus,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, j)
}
