// Package domain defines the persistence models for the career-coaching
// service: users, AI-generated career recommendations, skills, resumes, job
// matches, learning paths and coaching chats. These types are mapped with
// GORM and serialized to clients with camelCase JSON names.
//
// Shared conventions:
//   - ID is a per-table autoincrement integer; ids are never reused.
//   - UserID names the owning user. It is a foreign key by convention only.
//   - CreatedAt is written on insert and never updated (`<-:create`).
//   - List-valued attributes are JSON columns (gorm.io/datatypes).
package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Chat modes accepted by ChatMode.
const (
	ChatModeStandard   = "standard"
	ChatModeEnhanced   = "enhanced"
	ChatModeMagicLoops = "magic-loops"
)

// Learning path statuses. Any status may follow any other.
const (
	PathNotStarted = "not_started"
	PathInProgress = "in_progress"
	PathCompleted  = "completed"
)

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Resume statuses written by the service. Status stays free-form for clients.
const (
	ResumeDraft     = "draft"
	ResumeOptimized = "optimized"
)

// User is an account. Username and email are unique; the password is stored
// only as a bcrypt hash and never serialized.
type User struct {
	ID              uint                        `json:"id"              gorm:"primaryKey;autoIncrement"`
	Username        string                      `json:"username"        gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	Email           string                      `json:"email"           gorm:"type:varchar(255);not null"`
	EmailFold       string                      `json:"-"               gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	PasswordHash    string                      `json:"-"               gorm:"type:varchar(100);not null"`
	Skills          datatypes.JSONSlice[string] `json:"skills"`
	Interests       datatypes.JSONSlice[string] `json:"interests"`
	EducationLevel  string                      `json:"educationLevel"`
	Experience      string                      `json:"experience"`
	TargetCareer    string                      `json:"targetCareer"`
	ProfileComplete bool                        `json:"profileComplete" gorm:"not null;default:false"`
	IsPremium       bool                        `json:"isPremium"       gorm:"not null;default:false"`
	CreatedAt       time.Time                   `json:"createdAt"       gorm:"<-:create"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// BeforeSave keeps EmailFold in step with Email for struct writes.
func (u *User) BeforeSave(*gorm.DB) error {
	u.EmailFold = Fold(u.Email)
	return nil
}

// Career is one AI career recommendation. FitScore is bounded to [0,100]
// by the service before it is stored.
type Career struct {
	ID             uint                        `json:"id"          gorm:"primaryKey;autoIncrement"`
	UserID         uint                        `json:"userId"      gorm:"not null;index:idx_careers_user"`
	CareerTitle    string                      `json:"careerTitle" gorm:"type:varchar(255);not null"`
	Description    string                      `json:"description" gorm:"type:text"`
	SalaryRange    string                      `json:"salaryRange"`
	GrowthRate     string                      `json:"growthRate"`
	FitScore       int                         `json:"fitScore"    gorm:"not null;default:0"`
	RequiredSkills datatypes.JSONSlice[string] `json:"requiredSkills"`
	CreatedAt      time.Time                   `json:"createdAt"   gorm:"<-:create"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}

// TableName returns the database table name for Career.
func (Career) TableName() string { return "careers" }

// Skill is a skill the user has, or lacks when IsMissing is set. The same
// SkillName may appear more than once per user.
type Skill struct {
	ID          uint      `json:"id"                    gorm:"primaryKey;autoIncrement"`
	UserID      uint      `json:"userId"                gorm:"not null;index:idx_skills_user"`
	SkillName   string    `json:"skillName"             gorm:"type:varchar(255);not null"`
	NameFold    string    `json:"-"                     gorm:"type:varchar(255);not null;default:'';index:idx_skills_name_fold"`
	Category    string    `json:"category"              gorm:"type:varchar(64);not null;default:'general'"`
	Proficiency *int      `json:"proficiency,omitempty"`
	IsMissing   bool      `json:"isMissing"             gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"createdAt"             gorm:"<-:create"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the database table name for Skill.
func (Skill) TableName() string { return "skills" }

// BeforeSave keeps NameFold in step with SkillName for struct writes.
func (s *Skill) BeforeSave(*gorm.DB) error {
	s.NameFold = Fold(s.SkillName)
	return nil
}

// Resume holds the user's original resume text and, once optimized, the
// AI rewrite and its suggestions.
type Resume struct {
	ID               uint                        `json:"id"                         gorm:"primaryKey;autoIncrement"`
	UserID           uint                        `json:"userId"                     gorm:"not null;index:idx_resumes_user"`
	Title            string                      `json:"title"`
	OriginalContent  string                      `json:"originalContent"            gorm:"type:text;not null"`
	OptimizedContent *string                     `json:"optimizedContent,omitempty" gorm:"type:text"`
	AISuggestions    datatypes.JSONSlice[string] `json:"aiSuggestions,omitempty"`
	TargetRole       string                      `json:"targetRole,omitempty"`
	Status           string                      `json:"status"                     gorm:"type:varchar(64);not null;default:'draft'"`
	CreatedAt        time.Time                   `json:"createdAt"                  gorm:"<-:create"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

// TableName returns the database table name for Resume.
func (Resume) TableName() string { return "resumes" }

// DevelopmentPlan is the nested plan attached to a job match. Updates replace
// the whole object.
type DevelopmentPlan struct {
	PrioritySkills     []string `json:"prioritySkills"`
	Certifications     []string `json:"certifications"`
	ExperienceBuilding []string `json:"experienceBuilding"`
}

// CareerProgression describes where a matched job leads.
type CareerProgression struct {
	NextRoles        []string `json:"nextRoles"`
	TimelineEstimate string   `json:"timelineEstimate"`
}

// Job is an AI job match. IsSaved and ApplicationStatus are the fields
// users change after creation; IsSaved drives the saved filter.
type Job struct {
	ID                uint                                  `json:"id"                  gorm:"primaryKey;autoIncrement"`
	UserID            uint                                  `json:"userId"              gorm:"not null;index:idx_jobs_user"`
	JobTitle          string                                `json:"jobTitle"            gorm:"type:varchar(255);not null"`
	Company           string                                `json:"company"`
	Description       string                                `json:"description"         gorm:"type:text"`
	MatchPercentage   int                                   `json:"matchPercentage"     gorm:"not null;default:0"`
	MatchTier         string                                `json:"matchTier,omitempty"`
	Salary            string                                `json:"salary"`
	Location          string                                `json:"location"`
	IsSaved           bool                                  `json:"isSaved"             gorm:"not null;default:false;index:idx_jobs_user"`
	ApplicationStatus string                                `json:"applicationStatus,omitempty"`
	RequiredSkills    datatypes.JSONSlice[string]           `json:"requiredSkills"`
	UserSkillMatch    datatypes.JSONSlice[string]           `json:"userSkillMatch"`
	SkillGaps         datatypes.JSONSlice[string]           `json:"skillGaps"`
	DevelopmentPlan   datatypes.JSONType[DevelopmentPlan]   `json:"developmentPlan"`
	CareerProgression datatypes.JSONType[CareerProgression] `json:"careerProgression"`
	CreatedAt         time.Time                             `json:"createdAt"           gorm:"<-:create"`
	UpdatedAt         time.Time                             `json:"updatedAt"`
}

// TableName returns the database table name for Job.
func (Job) TableName() string { return "jobs" }

// LearningPath is a course recommendation tied to a skill. SkillID is not
// enforced; deleting the skill leaves the path in place.
type LearningPath struct {
	ID          uint      `json:"id"          gorm:"primaryKey;autoIncrement"`
	UserID      uint      `json:"userId"      gorm:"not null;index:idx_paths_user"`
	SkillID     uint      `json:"skillId"     gorm:"not null;index"`
	CourseTitle string    `json:"courseTitle" gorm:"type:varchar(255);not null"`
	Platform    string    `json:"platform"`
	Cost        string    `json:"cost"`
	Duration    string    `json:"duration"`
	URL         string    `json:"url"`
	Status      string    `json:"status"      gorm:"type:varchar(16);not null;default:'not_started'"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"<-:create"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the database table name for LearningPath.
func (LearningPath) TableName() string { return "learning_paths" }

// ChatMessage is one entry of a chat transcript.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat is a coaching conversation. Messages is append-only in practice;
// the store itself replaces the whole list on update.
type Chat struct {
	ID        uint                             `json:"id"       gorm:"primaryKey;autoIncrement"`
	UserID    uint                             `json:"userId"   gorm:"not null;index:idx_chats_user"`
	Title     string                           `json:"title"    gorm:"type:varchar(255);not null;default:'New chat'"`
	Messages  datatypes.JSONSlice[ChatMessage] `json:"messages"`
	ChatMode  string                           `json:"chatMode" gorm:"type:varchar(16);not null;default:'standard'"`
	CreatedAt time.Time                        `json:"createdAt" gorm:"<-:create"`
	UpdatedAt time.Time                        `json:"updatedAt"`
}

// TableName returns the database table name for Chat.
func (Chat) TableName() string { return "chats" }

// IsChatMode reports whether m is one of the supported chat modes.
func IsChatMode(m string) bool {
	switch m {
	case ChatModeStandard, ChatModeEnhanced, ChatModeMagicLoops:
		return true
	}
	return false
}

// IsPathStatus reports whether s is a valid learning path status.
func IsPathStatus(s string) bool {
	switch s {
	case PathNotStarted, PathInProgress, PathCompleted:
		return true
	}
	return false
}

// Fold returns the trimmed, Unicode case-folded form of s used for
// case-insensitive lookups. SQLite's lower() folds ASCII only, so lookups
// compare stored folds instead.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
