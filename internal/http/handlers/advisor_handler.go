package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/services"
)

// EvaluateBusinessIdeaRequest is the idea to evaluate.
type EvaluateBusinessIdeaRequest struct {
	Idea       string `json:"idea" binding:"required,notblank,min=5,max=4000" example:"Subscription meal kits for athletes"`
	Industry   string `json:"industry" binding:"max=128" example:"food"`
	Budget     string `json:"budget" binding:"max=128" example:"$20k"`
	Experience string `json:"experience" binding:"max=2000" example:"5 years in nutrition"`
}

// GenerateContentRequest is a free-form generation request.
type GenerateContentRequest struct {
	Prompt string `json:"prompt" binding:"required,notblank,max=4000" example:"backend role at Acme"`
	Kind   string `json:"kind" binding:"max=64" example:"cover letter"`
}

// GenerateContentResponse carries the generated text.
type GenerateContentResponse struct {
	Content string `json:"content"`
}

// EvaluateBusinessIdea godoc
// @ID          evaluateBusinessIdea
// @Summary     Evaluate a business idea
// @Description Scores feasibility (0..100) and lists strengths, weaknesses, opportunities, entry barriers and next steps. Nothing is stored.
// @Tags        Advisor
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       body  body  handlers.EvaluateBusinessIdeaRequest  true  "Idea"
//
// @Success     200  {object}  extract.BusinessEvaluation
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "AI service failure"
// @Router      /business-ideas/evaluate [post]
func (h *Handlers) EvaluateBusinessIdea(c *gin.Context) {
	var req EvaluateBusinessIdeaRequest
	if !bindJSON(c, &req) {
		return
	}
	ev, err := h.advisor.EvaluateBusinessIdea(c.Request.Context(), userID(c), services.BusinessIdeaInput{
		Idea:       req.Idea,
		Industry:   req.Industry,
		Budget:     req.Budget,
		Experience: req.Experience,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ev)
}

// GenerateContent godoc
// @ID          generateContent
// @Summary     Generate free-form content
// @Description Free tool; no account needed.
// @Tags        Advisor
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.GenerateContentRequest  true  "Prompt"
//
// @Success     200  {object}  handlers.GenerateContentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "AI service failure"
// @Router      /generate-content [post]
func (h *Handlers) GenerateContent(c *gin.Context) {
	var req GenerateContentRequest
	if !bindJSON(c, &req) {
		return
	}
	text, err := h.content.Generate(c.Request.Context(), services.ContentInput{
		Prompt: req.Prompt,
		Kind:   req.Kind,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, GenerateContentResponse{Content: text})
}
