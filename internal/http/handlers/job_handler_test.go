package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/tbourn/go-career-backend/internal/domain"
)

const jobsReply = `[
  {"jobTitle": "Data Analyst", "company": "Acme", "matchPercentage": 88, "requiredSkills": ["SQL"],
   "developmentPlan": {"prioritySkills": ["dbt"]}},
  {"title": "ML Engineer", "company": "Globex", "matchPercentage": "140%"}
]`

func matchJobs(t *testing.T, e *testEnv, tok string) []domain.Job {
	t.Helper()
	e.ai.set("job_match", jobsReply)
	w := e.do(http.MethodPost, "/api/jobs/match", map[string]any{
		"userSkills":     []string{"Python", "SQL"},
		"userExperience": "3 years",
	}, tok)
	expectStatus(t, w, http.StatusOK)
	var jobs []domain.Job
	decode(t, w, &jobs)
	return jobs
}

func TestMatchJobs_StoresClampedMatches(t *testing.T) {
	e := newTestEnv(t)
	tok, uid := e.signup("matcher")

	jobs := matchJobs(t, e, tok)
	if len(jobs) != 2 {
		t.Fatalf("jobs=%d", len(jobs))
	}
	if jobs[0].UserID != uid || jobs[0].MatchTier != "excellent" || jobs[0].IsSaved {
		t.Fatalf("first job=%+v", jobs[0])
	}
	if got := jobs[0].DevelopmentPlan.Data().PrioritySkills; len(got) != 1 || got[0] != "dbt" {
		t.Fatalf("development plan=%+v", jobs[0].DevelopmentPlan.Data())
	}
	if jobs[1].JobTitle != "ML Engineer" || jobs[1].MatchPercentage != 100 {
		t.Fatalf("second job=%+v", jobs[1])
	}

	w := e.do(http.MethodPost, "/api/jobs/match", map[string]any{"userSkills": []string{}}, tok)
	er := expectError(t, w, http.StatusBadRequest, ErrCodeValidation)
	if er.Details[0].Field != "userSkills" {
		t.Fatalf("details=%+v", er.Details)
	}
}

func TestSavedJobsFilter(t *testing.T) {
	e := newTestEnv(t)
	tok, _ := e.signup("saver")
	jobs := matchJobs(t, e, tok)
	target := jobs[0]
	path := fmt.Sprintf("/api/jobs/%d", target.ID)

	listSaved := func() []domain.Job {
		t.Helper()
		w := e.do(http.MethodGet, "/api/jobs?saved=true", nil, tok)
		expectStatus(t, w, http.StatusOK)
		var out []domain.Job
		decode(t, w, &out)
		return out
	}
	contains := func(list []domain.Job, id uint) bool {
		for _, j := range list {
			if j.ID == id {
				return true
			}
		}
		return false
	}

	if contains(listSaved(), target.ID) {
		t.Fatalf("job saved before PATCH")
	}

	w := e.do(http.MethodPatch, path, map[string]any{"isSaved": true}, tok)
	expectStatus(t, w, http.StatusOK)
	var j domain.Job
	decode(t, w, &j)
	if !j.IsSaved || j.JobTitle != target.JobTitle {
		t.Fatalf("patched=%+v", j)
	}
	if saved := listSaved(); !contains(saved, target.ID) || len(saved) != 1 {
		t.Fatalf("saved list=%+v", saved)
	}

	var unsaved []domain.Job
	decode(t, e.do(http.MethodGet, "/api/jobs?saved=false", nil, tok), &unsaved)
	if contains(unsaved, target.ID) || len(unsaved) != 1 {
		t.Fatalf("unsaved list=%+v", unsaved)
	}

	expectStatus(t, e.do(http.MethodPatch, path, map[string]any{"isSaved": false}, tok), http.StatusOK)
	if contains(listSaved(), target.ID) {
		t.Fatalf("job still listed as saved after unsave")
	}

	var all []domain.Job
	decode(t, e.do(http.MethodGet, "/api/jobs", nil, tok), &all)
	if len(all) != 2 {
		t.Fatalf("all=%d", len(all))
	}
}

func TestJobs_BadFilterAndOwnership(t *testing.T) {
	e := newTestEnv(t)
	tok, _ := e.signup("owner")
	other, _ := e.signup("other")
	jobs := matchJobs(t, e, tok)

	er := expectError(t, e.do(http.MethodGet, "/api/jobs?saved=maybe", nil, tok), http.StatusBadRequest, ErrCodeValidation)
	if er.Details[0].Field != "saved" {
		t.Fatalf("details=%+v", er.Details)
	}

	path := fmt.Sprintf("/api/jobs/%d", jobs[0].ID)
	expectError(t, e.do(http.MethodGet, path, nil, other), http.StatusNotFound, ErrCodeNotFound)
	expectError(t, e.do(http.MethodPatch, path, map[string]any{"isSaved": true}, other), http.StatusNotFound, ErrCodeNotFound)
	expectError(t, e.do(http.MethodPatch, "/api/jobs/9999", map[string]any{"isSaved": true}, tok), http.StatusNotFound, ErrCodeNotFound)

	w := e.do(http.MethodPatch, path, map[string]any{"applicationStatus": "applied"}, tok)
	expectStatus(t, w, http.StatusOK)
	var j domain.Job
	decode(t, w, &j)
	if j.ApplicationStatus != "applied" || j.IsSaved {
		t.Fatalf("patched=%+v", j)
	}
}
