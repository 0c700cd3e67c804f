// Skill HTTP handlers.
//
//   - POST   /skills               (create)
//   - GET    /skills               (list, ETag support)
//   - GET    /skills/{id}          (read)
//   - PATCH  /skills/{id}          (partial update)
//   - DELETE /skills/{id}          (delete; learning paths are kept)
//   - POST   /skills/analyze-gap   (AI gap analysis, persists skills and paths)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/services"
)

//
// DTOs
//

// CreateSkillRequest is the JSON payload for creating a skill.
type CreateSkillRequest struct {
	SkillName   string `json:"skillName" binding:"required,notblank,max=255" example:"SQL"`
	Category    string `json:"category" binding:"max=64" example:"technical"`
	Proficiency *int   `json:"proficiency" binding:"omitempty,min=0,max=100" example:"40"`
	IsMissing   bool   `json:"isMissing"`
}

// UpdateSkillRequest is the JSON payload for PATCH /skills/{id}.
type UpdateSkillRequest struct {
	SkillName   *string `json:"skillName" binding:"omitempty,notblank,max=255"`
	Category    *string `json:"category" binding:"omitempty,max=64"`
	Proficiency *int    `json:"proficiency" binding:"omitempty,min=0,max=100"`
	IsMissing   *bool   `json:"isMissing"`
}

// AnalyzeGapRequest is the JSON payload for a skill-gap analysis.
type AnalyzeGapRequest struct {
	CurrentSkills []string `json:"currentSkills" binding:"omitempty,max=100,dive,max=100" example:"Python"`
	TargetCareer  string   `json:"targetCareer" binding:"required,notblank,min=2,max=255" example:"Data Scientist"`
}

//
// Handlers
//

// CreateSkill godoc
// @ID          createSkill
// @Summary     Create a skill
// @Tags        Skills
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       body  body  handlers.CreateSkillRequest  true  "Skill"
//
// @Success     201  {object}  domain.Skill
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Not authenticated"
// @Router      /skills [post]
func (h *Handlers) CreateSkill(c *gin.Context) {
	var req CreateSkillRequest
	if !bindJSON(c, &req) {
		return
	}
	sk, err := h.skills.Create(c.Request.Context(), userID(c), services.SkillInput{
		SkillName:   req.SkillName,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		IsMissing:   req.IsMissing,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, sk)
}

// ListSkills godoc
// @ID          listSkills
// @Summary     List skills
// @Description Returns the session user's skills in creation order. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Skills
// @Produce     json
// @Security    SessionCookie
//
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
//
// @Success     200  {array}   domain.Skill
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string  "Not Modified"
// @Failure     401  {object}  handlers.ErrorResponse  "Not authenticated"
// @Router      /skills [get]
func (h *Handlers) ListSkills(c *gin.Context) {
	uid := userID(c)
	if h.notModified(c, "skills", "", uid) {
		return
	}
	out, err := h.skills.List(c.Request.Context(), uid)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nonNil(out))
}

// GetSkill godoc
// @ID          getSkill
// @Summary     Get a skill
// @Tags        Skills
// @Produce     json
// @Security    SessionCookie
//
// @Param       id  path  int  true  "Skill ID"  minimum(1)
//
// @Success     200  {object}  domain.Skill
// @Failure     400  {object}  handlers.ErrorResponse  "Bad id"
// @Failure     404  {object}  handlers.ErrorResponse  "Skill not found"
// @Router      /skills/{id} [get]
func (h *Handlers) GetSkill(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	sk, err := h.skills.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, sk)
}

// UpdateSkill godoc
// @ID          updateSkill
// @Summary     Update a skill
// @Tags        Skills
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       id    path  int                          true  "Skill ID"  minimum(1)
// @Param       body  body  handlers.UpdateSkillRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.Skill
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     404  {object}  handlers.ErrorResponse  "Skill not found"
// @Router      /skills/{id} [patch]
func (h *Handlers) UpdateSkill(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	var req UpdateSkillRequest
	if !bindJSON(c, &req) {
		return
	}
	sk, err := h.skills.Update(c.Request.Context(), userID(c), id, services.SkillPatch{
		SkillName:   req.SkillName,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		IsMissing:   req.IsMissing,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, sk)
}

// DeleteSkill godoc
// @ID          deleteSkill
// @Summary     Delete a skill
// @Description Deletes the skill. Learning paths that reference it are kept.
// @Tags        Skills
// @Security    SessionCookie
//
// @Param       id  path  int  true  "Skill ID"  minimum(1)
//
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse  "Skill not found"
// @Router      /skills/{id} [delete]
func (h *Handlers) DeleteSkill(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	if err := h.skills.Delete(c.Request.Context(), userID(c), id); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}

// AnalyzeGap godoc
// @ID          analyzeSkillGap
// @Summary     Analyze the skill gap to a target career
// @Description Runs an AI gap analysis. Each missing skill is stored as a new skill with isMissing=true and each recommended course as a learning path, all in one transaction.
// @Tags        Skills
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       body  body  handlers.AnalyzeGapRequest  true  "Gap analysis subject"
//
// @Success     200  {object}  services.GapResult
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Not authenticated"
// @Failure     500  {object}  handlers.ErrorResponse  "AI service failure"
// @Router      /skills/analyze-gap [post]
func (h *Handlers) AnalyzeGap(c *gin.Context) {
	var req AnalyzeGapRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.skills.AnalyzeGap(c.Request.Context(), userID(c), services.GapInput{
		CurrentSkills: req.CurrentSkills,
		TargetCareer:  req.TargetCareer,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}
