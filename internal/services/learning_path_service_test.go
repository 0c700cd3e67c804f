package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tbourn/go-career-backend/internal/domain"
)

func TestLearningPathService_Create_RequiresOwnedSkill(t *testing.T) {
	db := newSvcDB(t)
	skills := &SkillService{DB: db}
	s := &LearningPathService{DB: db}
	ctx := context.Background()
	ada := mustUser(t, db, "ada", false)
	bob := mustUser(t, db, "bob", false)

	bobSkill, _ := skills.Create(ctx, bob.ID, SkillInput{SkillName: "Rust"})

	if _, err := s.Create(ctx, ada.ID, LearningPathInput{SkillID: bobSkill.ID, CourseTitle: "Rust Book"}); !errors.Is(err, ErrSkillNotOwned) {
		t.Fatalf("foreign skill: want ErrSkillNotOwned, got %v", err)
	}
	if _, err := s.Create(ctx, ada.ID, LearningPathInput{SkillID: 999, CourseTitle: "x"}); !errors.Is(err, ErrSkillNotOwned) {
		t.Fatalf("missing skill: want ErrSkillNotOwned, got %v", err)
	}
	if _, err := s.Create(ctx, ada.ID, LearningPathInput{CourseTitle: "x"}); !errors.Is(err, ErrSkillNotOwned) {
		t.Fatalf("no skill: want ErrSkillNotOwned, got %v", err)
	}
	if n := countRows(t, db, &domain.LearningPath{}); n != 0 {
		t.Fatalf("nothing should be stored, got %d", n)
	}
}

func TestLearningPathService_Create_BySkillName_AndStatusTransitions(t *testing.T) {
	db := newSvcDB(t)
	skills := &SkillService{DB: db}
	s := &LearningPathService{DB: db}
	ctx := context.Background()
	ada := mustUser(t, db, "ada", false)
	sql, _ := skills.Create(ctx, ada.ID, SkillInput{SkillName: "SQL"})

	lp, err := s.Create(ctx, ada.ID, LearningPathInput{SkillName: "sql", CourseTitle: "SQL Basics", Platform: "Udemy"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if lp.SkillID != sql.ID || lp.Status != domain.PathNotStarted {
		t.Fatalf("unexpected path: %+v", lp)
	}

	lp2, err := s.Create(ctx, ada.ID, LearningPathInput{SkillName: "Docker", CourseTitle: "Docker 101", Status: domain.PathInProgress})
	if err != nil {
		t.Fatalf("create with new skill: %v", err)
	}
	created, err := skills.Get(ctx, ada.ID, lp2.SkillID)
	if err != nil || created.SkillName != "Docker" {
		t.Fatalf("backing skill: %v %+v", err, created)
	}

	// any status may follow any other
	for _, st := range []string{domain.PathCompleted, domain.PathNotStarted, domain.PathInProgress} {
		got, err := s.Update(ctx, ada.ID, lp.ID, LearningPathPatch{Status: ptr(st)})
		if err != nil || got.Status != st {
			t.Fatalf("transition to %s: %v %+v", st, err, got)
		}
		if got.CourseTitle != "SQL Basics" {
			t.Fatalf("unsupplied fields changed: %+v", got)
		}
	}

	list, _ := s.List(ctx, ada.ID)
	if len(list) != 2 {
		t.Fatalf("want 2 paths, got %d", len(list))
	}
	if _, err := s.Get(ctx, ada.ID+10, lp.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign get: %v", err)
	}
}
