package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/tbourn/go-career-backend/internal/domain"
)

func TestGenerateCareers(t *testing.T) {
	e := newTestEnv(t)
	tok, uid := e.signup("seeker")
	e.ai.set("career_recommendation", "```json\n"+`{"careers": [
	  {"careerTitle": "Data Scientist", "fitScore": 91, "requiredSkills": ["Python", "Statistics"]},
	  {"title": "Analytics Engineer", "fitScore": -4},
	  {"description": "no title, dropped"}
	]}`+"\n```")

	w := e.do(http.MethodPost, "/api/careers/generate", map[string]any{
		"skills":    []string{"Python"},
		"interests": []string{"data"},
	}, tok)
	expectStatus(t, w, http.StatusOK)

	var out []domain.Career
	decode(t, w, &out)
	if len(out) != 2 {
		t.Fatalf("careers=%+v", out)
	}
	if out[0].UserID != uid || out[0].CareerTitle != "Data Scientist" || out[0].FitScore != 91 {
		t.Fatalf("first=%+v", out[0])
	}
	if out[1].CareerTitle != "Analytics Engineer" || out[1].FitScore != 0 || out[1].RequiredSkills == nil {
		t.Fatalf("second=%+v", out[1])
	}

	var list []domain.Career
	decode(t, e.do(http.MethodGet, "/api/careers", nil, tok), &list)
	if len(list) != 2 || list[0].ID >= list[1].ID {
		t.Fatalf("list=%+v", list)
	}
}

func TestGenerateCareers_Failures(t *testing.T) {
	e := newTestEnv(t)
	tok, _ := e.signup("seeker")

	er := expectError(t, e.do(http.MethodPost, "/api/careers/generate", map[string]any{"skills": []string{}}, tok),
		http.StatusBadRequest, ErrCodeValidation)
	if er.Details[0].Field != "skills" {
		t.Fatalf("details=%+v", er.Details)
	}

	e.ai.fail(errors.New("quota"))
	expectError(t, e.do(http.MethodPost, "/api/careers/generate", map[string]any{"skills": []string{"Go"}}, tok),
		http.StatusInternalServerError, ErrCodeUpstream)

	var n int64
	e.db.Model(&domain.Career{}).Count(&n)
	if n != 0 {
		t.Fatalf("careers stored after failure=%d", n)
	}
}
