package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

func TestCreateThenGet_ReturnsEqualRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	prof := 3
	created, err := CreateSkill(ctx, s.DB, &domain.Skill{UserID: 1, SkillName: "Python", Category: "technical", Proficiency: &prof})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := GetSkill(ctx, s.DB, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Python", got.SkillName)
	assert.Equal(t, 3, *got.Proficiency)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	c, err := CreateCareer(ctx, s.DB, &domain.Career{UserID: 1, CareerTitle: "Data Scientist", FitScore: 80, RequiredSkills: datatypes.JSONSlice[string]{"SQL"}})
	require.NoError(t, err)
	gc, err := GetCareer(ctx, s.DB, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"SQL"}, []string(gc.RequiredSkills))
}

func TestGet_MissingIsNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := GetResume(context.Background(), s.DB, 42)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListByUser_NeverReturnsOtherUsersRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, uid := range []uint{1, 2, 1, 2, 1} {
		_, err := CreateResume(ctx, s.DB, &domain.Resume{UserID: uid, OriginalContent: "cv", Status: domain.ResumeDraft})
		require.NoError(t, err)
	}

	mine, err := ListResumesByUser(ctx, s.DB, 1)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for i, r := range mine {
		assert.Equal(t, uint(1), r.UserID)
		if i > 0 {
			assert.Greater(t, r.ID, mine[i-1].ID, "insertion order")
		}
	}

	none, err := ListResumesByUser(ctx, s.DB, 99)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdate_MissingID_LeavesStoreUnchanged(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := CreateSkill(ctx, s.DB, &domain.Skill{UserID: 1, SkillName: "Go", Category: "technical"})
	require.NoError(t, err)
	before, err := ListSkillsByUser(ctx, s.DB, 1)
	require.NoError(t, err)

	_, err = UpdateSkill(ctx, s.DB, 999, map[string]any{"skill_name": "Rust", "user_id": uint(1)})
	assert.True(t, errors.Is(err, ErrNotFound))

	after, err := ListSkillsByUser(ctx, s.DB, 1)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
	assert.Equal(t, "Go", after[0].SkillName)
}

func TestUpdate_ShallowMerge_KeepsUnsuppliedFieldsAndCreatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	j, err := CreateJob(ctx, s.DB, &domain.Job{
		UserID:   1,
		JobTitle: "Analyst",
		Company:  "Acme",
		DevelopmentPlan: datatypes.NewJSONType(domain.DevelopmentPlan{
			PrioritySkills: []string{"SQL"},
			Certifications: []string{"AWS"},
		}),
	})
	require.NoError(t, err)
	createdAt := j.CreatedAt

	time.Sleep(5 * time.Millisecond)
	updated, err := UpdateJob(ctx, s.DB, j.ID, map[string]any{
		"is_saved":         true,
		"created_at":       time.Unix(0, 0),
		"development_plan": datatypes.NewJSONType(domain.DevelopmentPlan{PrioritySkills: []string{"dbt"}}),
	})
	require.NoError(t, err)

	assert.True(t, updated.IsSaved)
	assert.Equal(t, "Acme", updated.Company, "unsupplied fields are kept")
	assert.True(t, updated.CreatedAt.Equal(createdAt), "createdAt is immutable")
	assert.Equal(t, []string{"dbt"}, updated.DevelopmentPlan.Data().PrioritySkills)
	assert.Nil(t, updated.DevelopmentPlan.Data().Certifications, "nested objects are replaced, not merged")
}

func TestDeleteSkill_ReportsExistence_NoCascade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sk, err := CreateSkill(ctx, s.DB, &domain.Skill{UserID: 1, SkillName: "SQL", Category: "technical"})
	require.NoError(t, err)
	p, err := CreateLearningPath(ctx, s.DB, &domain.LearningPath{UserID: 1, SkillID: sk.ID, CourseTitle: "SQL 101", Status: domain.PathNotStarted})
	require.NoError(t, err)

	existed, err := DeleteSkill(ctx, s.DB, sk.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = DeleteSkill(ctx, s.DB, sk.ID)
	require.NoError(t, err)
	assert.False(t, existed)

	still, err := GetLearningPath(ctx, s.DB, p.ID)
	require.NoError(t, err)
	assert.Equal(t, sk.ID, still.SkillID)

	next, err := CreateSkill(ctx, s.DB, &domain.Skill{UserID: 1, SkillName: "Go", Category: "technical"})
	require.NoError(t, err)
	assert.Greater(t, next.ID, sk.ID, "ids are never reused")
}

func TestFindSkillByName_CaseInsensitive_Scoped(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := CreateSkill(ctx, s.DB, &domain.Skill{UserID: 1, SkillName: "Machine Learning", Category: "technical"})
	require.NoError(t, err)
	_, err = CreateSkill(ctx, s.DB, &domain.Skill{UserID: 1, SkillName: "machine learning", Category: "technical"})
	require.NoError(t, err)
	_, err = CreateSkill(ctx, s.DB, &domain.Skill{UserID: 2, SkillName: "SQL", Category: "technical"})
	require.NoError(t, err)

	got, err := FindSkillByName(ctx, s.DB, 1, "  MACHINE learning ")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = FindSkillByName(ctx, s.DB, 1, "sql")
	assert.True(t, errors.Is(err, ErrNotFound), "other users' skills are invisible")

	eco, err := CreateSkill(ctx, s.DB, &domain.Skill{UserID: 1, SkillName: "Économie", Category: "soft"})
	require.NoError(t, err)
	for _, name := range []string{"Économie", "économie", "ÉCONOMIE", " économie "} {
		got, err := FindSkillByName(ctx, s.DB, 1, name)
		require.NoError(t, err, name)
		assert.Equal(t, eco.ID, got.ID, name)
	}

	_, err = UpdateSkill(ctx, s.DB, eco.ID, map[string]any{"skill_name": "Ökonomie"})
	require.NoError(t, err)
	got, err = FindSkillByName(ctx, s.DB, 1, "ÖKONOMIE")
	require.NoError(t, err)
	assert.Equal(t, eco.ID, got.ID, "renames refresh the folded name")
	_, err = FindSkillByName(ctx, s.DB, 1, "économie")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListJobsByUser_SavedFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := CreateJob(ctx, s.DB, &domain.Job{UserID: 1, JobTitle: "A"})
	require.NoError(t, err)
	_, err = CreateJob(ctx, s.DB, &domain.Job{UserID: 1, JobTitle: "B"})
	require.NoError(t, err)

	yes, no := true, false
	_, err = UpdateJob(ctx, s.DB, a.ID, map[string]any{"is_saved": true})
	require.NoError(t, err)

	saved, err := ListJobsByUser(ctx, s.DB, 1, &yes)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, a.ID, saved[0].ID)

	_, err = UpdateJob(ctx, s.DB, a.ID, map[string]any{"is_saved": false})
	require.NoError(t, err)
	saved, err = ListJobsByUser(ctx, s.DB, 1, &yes)
	require.NoError(t, err)
	assert.Empty(t, saved)

	unsaved, err := ListJobsByUser(ctx, s.DB, 1, &no)
	require.NoError(t, err)
	assert.Len(t, unsaved, 2)

	all, err := ListJobsByUser(ctx, s.DB, 1, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBatch_RollsBackEveryWriteOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Batch(ctx, func(tx *gorm.DB) error {
		for _, name := range []string{"SQL", "Statistics"} {
			if _, err := CreateSkill(ctx, tx, &domain.Skill{UserID: 1, SkillName: name, IsMissing: true, Category: "technical"}); err != nil {
				return err
			}
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := CountSkillsByUser(ctx, s.DB, 1)
	require.NoError(t, err)
	assert.Zero(t, n)

	err = s.Batch(ctx, func(tx *gorm.DB) error {
		_, err := CreateSkill(ctx, tx, &domain.Skill{UserID: 1, SkillName: "SQL", IsMissing: true, Category: "technical"})
		return err
	})
	require.NoError(t, err)
	n, err = CountSkillsByUser(ctx, s.DB, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestUsers_LookupsAndDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := CreateUser(ctx, s.DB, &domain.User{Username: "ada", Email: "Ada@Example.com", PasswordHash: "h"})
	require.NoError(t, err)

	byName, err := GetUserByUsername(ctx, s.DB, "ada")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byEmail, err := GetUserByEmail(ctx, s.DB, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = GetUserByUsername(ctx, s.DB, "grace")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = CreateUser(ctx, s.DB, &domain.User{Username: "ada", Email: "x@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicate)
	_, err = CreateUser(ctx, s.DB, &domain.User{Username: "ada2", Email: "ADA@example.COM", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicate, "emails are unique ignoring case")

	n, err := CountUsers(ctx, s.DB)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	zoe, err := CreateUser(ctx, s.DB, &domain.User{Username: "zoe", Email: "Zoë@Exämple.org", PasswordHash: "h"})
	require.NoError(t, err)
	got, err := GetUserByEmail(ctx, s.DB, "ZOË@EXÄMPLE.ORG")
	require.NoError(t, err)
	assert.Equal(t, zoe.ID, got.ID)

	_, err = UpdateUser(ctx, s.DB, zoe.ID, map[string]any{"email": "Élodie@example.org"})
	require.NoError(t, err)
	got, err = GetUserByEmail(ctx, s.DB, "élodie@EXAMPLE.org")
	require.NoError(t, err)
	assert.Equal(t, zoe.ID, got.ID)
}

func TestStore_PingAndClose(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Ping(context.Background()))
}
