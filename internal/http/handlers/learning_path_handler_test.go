package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/tbourn/go-career-backend/internal/domain"
)

func TestLearningPaths_CreateAndTransition(t *testing.T) {
	e := newTestEnv(t)
	tok, uid := e.signup("learner")

	w := e.do(http.MethodPost, "/api/learning-paths", map[string]any{
		"skillName":   "Docker",
		"courseTitle": "Docker Deep Dive",
		"platform":    "Udemy",
		"url":         "https://udemy.com/docker",
	}, tok)
	expectStatus(t, w, http.StatusCreated)
	var lp domain.LearningPath
	decode(t, w, &lp)
	if lp.UserID != uid || lp.SkillID == 0 || lp.Status != domain.PathNotStarted {
		t.Fatalf("created=%+v", lp)
	}
	path := fmt.Sprintf("/api/learning-paths/%d", lp.ID)

	for _, status := range []string{domain.PathCompleted, domain.PathNotStarted, domain.PathInProgress} {
		w := e.do(http.MethodPatch, path, map[string]any{"status": status}, tok)
		expectStatus(t, w, http.StatusOK)
		decode(t, w, &lp)
		if lp.Status != status || lp.CourseTitle != "Docker Deep Dive" {
			t.Fatalf("after %s: %+v", status, lp)
		}
	}

	w = e.do(http.MethodPatch, path, map[string]any{"status": "paused"}, tok)
	er := expectError(t, w, http.StatusBadRequest, ErrCodeValidation)
	if er.Details[0].Field != "status" || er.Details[0].Rule != "pathstatus" {
		t.Fatalf("details=%+v", er.Details)
	}

	var list []domain.LearningPath
	decode(t, e.do(http.MethodGet, "/api/learning-paths", nil, tok), &list)
	if len(list) != 1 || list[0].Status != domain.PathInProgress {
		t.Fatalf("list=%+v", list)
	}
}

func TestLearningPaths_SkillMustBelongToCaller(t *testing.T) {
	e := newTestEnv(t)
	alice, _ := e.signup("alice")
	bob, _ := e.signup("bob")

	w := e.do(http.MethodPost, "/api/skills", map[string]any{"skillName": "Kotlin"}, alice)
	var sk domain.Skill
	decode(t, w, &sk)

	w = e.do(http.MethodPost, "/api/learning-paths", map[string]any{
		"skillId":     sk.ID,
		"courseTitle": "Kotlin for Java devs",
	}, bob)
	expectError(t, w, http.StatusBadRequest, ErrCodeBadRequest)

	w = e.do(http.MethodPost, "/api/learning-paths", map[string]any{"courseTitle": "Orphan"}, bob)
	er := expectError(t, w, http.StatusBadRequest, ErrCodeValidation)
	if er.Details[0].Field != "skillId" || er.Details[0].Rule != "required_without" {
		t.Fatalf("details=%+v", er.Details)
	}

	var n int64
	e.db.Model(&domain.LearningPath{}).Count(&n)
	if n != 0 {
		t.Fatalf("learning paths stored=%d", n)
	}

	w = e.do(http.MethodPost, "/api/learning-paths", map[string]any{
		"skillId":     sk.ID,
		"courseTitle": "Kotlin for Java devs",
		"status":      domain.PathInProgress,
	}, alice)
	expectStatus(t, w, http.StatusCreated)
	var lp domain.LearningPath
	decode(t, w, &lp)
	expectError(t, e.do(http.MethodGet, fmt.Sprintf("/api/learning-paths/%d", lp.ID), nil, bob), http.StatusNotFound, ErrCodeNotFound)
}
