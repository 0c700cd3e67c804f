package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractScore(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"slash hundred", "Feasibility: 82/100", 82},
		{"spaced slash", "Score is 74 / 100 overall", 74},
		{"percent", "You are 90% ready", 90},
		{"out of", "I'd rate it 55 out of 100.", 55},
		{"first by position", "70% now, 95/100 later", 70},
		{"no score", "no score mentioned", DefaultScore},
		{"empty", "", DefaultScore},
		{"not clamped", "Readiness: 150/100", 150},
		{"bare number ignored", "There are 12 steps", DefaultScore},
		{"decimal percent skipped", "grew 3.5% and scored 82/100", 82},
		{"decimal only", "rates rose 12.75% this quarter", DefaultScore},
		{"inside word", "model x82% beta", DefaultScore},
		{"start of text", "88% match", 88},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractScore(tc.in))
		})
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-5))
	assert.Equal(t, 0, ClampScore(0))
	assert.Equal(t, 42, ClampScore(42))
	assert.Equal(t, 100, ClampScore(100))
	assert.Equal(t, 100, ClampScore(150))
}

func TestExtractSection_StrengthsExample(t *testing.T) {
	text := "Strengths: Good market fit. Strong team.\n\nWeaknesses: Thin margins."
	assert.Equal(t, []string{"Good market fit", "Strong team"}, ExtractSection(text, "Strengths"))
	assert.Equal(t, []string{"Thin margins"}, ExtractSection(text, "Weaknesses"))
}

func TestExtractSection_MissingHeading(t *testing.T) {
	got := ExtractSection("Nothing structured here.", "Strengths")
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = ExtractSection("", "Strengths")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractSection_Bullets(t *testing.T) {
	text := `Here is my analysis.

**Missing Skills:**
- SQL
- Statistics
* Machine Learning
1. Data Visualization
Transferable Skills:
- Python`

	assert.Equal(t,
		[]string{"SQL", "Statistics", "Machine Learning", "Data Visualization"},
		ExtractSection(text, "Missing Skills"))
	assert.Equal(t, []string{"Python"}, ExtractSection(text, "Transferable Skills"))
}

func TestExtractSection_MarkdownHeadingAndBlankLine(t *testing.T) {
	text := "## Next Steps\n\n• Validate demand\n• Build an MVP\n\n## Summary\nPromising."
	assert.Equal(t, []string{"Validate demand", "Build an MVP"}, ExtractSection(text, "Next Steps"))
	assert.Equal(t, []string{"Promising"}, ExtractSection(text, "summary"))
}

func TestExtractSection_CaseInsensitiveAndStopsAtNextHeading(t *testing.T) {
	text := "ENTRY BARRIERS: Regulation. Capital\nOpportunities: Export markets"
	assert.Equal(t, []string{"Regulation", "Capital"}, ExtractSection(text, "Entry Barriers"))
	assert.Equal(t, []string{"Export markets"}, ExtractSection(text, "Opportunities"))
}

func TestExtractSection_InlineHeading(t *testing.T) {
	text := "Overall the idea is sound. Key Strengths: low cost"
	assert.Equal(t, []string{"low cost"}, ExtractSection(text, "Strengths"))
}

func TestParseCourse(t *testing.T) {
	cases := []struct {
		in   string
		want Course
	}{
		{
			in:   "SQL: Databases for Data Science (Coursera)",
			want: Course{SkillName: "SQL", CourseTitle: "Databases for Data Science", Platform: "Coursera"},
		},
		{
			in: "- Statistics - Intro to Statistics (Udacity, free, 4 weeks) https://udacity.com/st101",
			want: Course{
				SkillName: "Statistics", CourseTitle: "Intro to Statistics", Platform: "Udacity",
				Cost: "free", Duration: "4 weeks", URL: "https://udacity.com/st101",
			},
		},
		{
			in:   "Deep Learning Specialization ($49, 3 months)",
			want: Course{CourseTitle: "Deep Learning Specialization", Cost: "$49", Duration: "3 months"},
		},
		{
			in:   "Python: Python for Everybody: Getting Started",
			want: Course{SkillName: "Python", CourseTitle: "Python for Everybody: Getting Started"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCourse(tc.in))
		})
	}
}

func TestSkillName(t *testing.T) {
	assert.Equal(t, "SQL", SkillName("SQL - querying relational data"))
	assert.Equal(t, "Statistics", SkillName("Statistics (hypothesis testing)"))
	assert.Equal(t, "Machine Learning", SkillName("**Machine Learning**: core of the role"))
	assert.Equal(t, "Docker", SkillName("Docker"))
}

func TestDecodeJSON(t *testing.T) {
	type item struct {
		Name string `json:"name"`
	}

	var bare []item
	require.NoError(t, DecodeJSON(`[{"name":"a"}]`, &bare))
	assert.Equal(t, []item{{"a"}}, bare)

	var fenced []item
	require.NoError(t, DecodeJSON("Sure!\n```json\n[{\"name\":\"b\"}]\n```\nEnjoy.", &fenced))
	assert.Equal(t, []item{{"b"}}, fenced)

	var prose item
	require.NoError(t, DecodeJSON(`Here you go: {"name":"c"} hope it helps`, &prose))
	assert.Equal(t, "c", prose.Name)

	var none item
	assert.ErrorIs(t, DecodeJSON("no json here", &none), ErrNoJSON)
	assert.ErrorIs(t, DecodeJSON("   ", &none), ErrNoJSON)
}

func TestDefault_GapAnalysis_Prose(t *testing.T) {
	text := `Readiness Score: 40/100

Missing Skills:
- SQL - querying data
- Statistics (hypothesis testing)

Transferable Skills:
- Python

Recommended Courses:
1. SQL: Databases for Data Science (Coursera)
2. Statistics: Intro to Statistics (Udacity, free)

Summary: Solid base. Focus on data skills.`

	got := Default{}.GapAnalysis(text, "Data Scientist", []string{"Python"})
	assert.Equal(t, "Data Scientist", got.TargetCareer)
	assert.Equal(t, []string{"Python"}, got.CurrentSkills)
	assert.Equal(t, []string{"SQL", "Statistics"}, got.MissingSkills)
	assert.Equal(t, []string{"Python"}, got.TransferableSkills)
	require.Len(t, got.Courses, 2)
	assert.Equal(t, "SQL", got.Courses[0].SkillName)
	assert.Equal(t, "Coursera", got.Courses[0].Platform)
	assert.Equal(t, "free", got.Courses[1].Cost)
	assert.Equal(t, 40, got.ReadinessScore)
	assert.Equal(t, "Solid base. Focus on data skills", got.Summary)
	assert.False(t, got.StructuredResponse)
}

func TestDefault_GapAnalysis_JSON(t *testing.T) {
	text := "```json\n" + `{
  "missingSkills": ["SQL", " "],
  "transferableSkills": ["Python"],
  "recommendedCourses": [
    {"skillName": "SQL", "courseTitle": "SQL Basics", "platform": "Udemy"},
    {"skillName": "Git", "courseTitle": ""}
  ],
  "readinessScore": 55,
  "summary": "Close."
}` + "\n```"

	got := Default{}.GapAnalysis(text, "Data Engineer", nil)
	assert.True(t, got.StructuredResponse)
	assert.Equal(t, []string{}, got.CurrentSkills)
	assert.Equal(t, []string{"SQL"}, got.MissingSkills)
	require.Len(t, got.Courses, 1)
	assert.Equal(t, "SQL Basics", got.Courses[0].CourseTitle)
	assert.Equal(t, 55, got.ReadinessScore)
	assert.Equal(t, "Close.", got.Summary)
}

func TestDefault_GapAnalysis_Unstructured(t *testing.T) {
	got := Default{}.GapAnalysis("I cannot help with that.", "Pilot", []string{"Driving"})
	assert.NotNil(t, got.MissingSkills)
	assert.Empty(t, got.MissingSkills)
	assert.NotNil(t, got.Courses)
	assert.Empty(t, got.Courses)
	assert.Equal(t, DefaultScore, got.ReadinessScore)
}

func TestDefault_BusinessEvaluation(t *testing.T) {
	text := `Feasibility: 82/100

Strengths: Good market fit. Strong team.

Weaknesses:
- Thin margins

Opportunities: Export markets

Entry Barriers: Licensing

Next Steps:
1. Interview ten customers
2. Price the MVP`

	got := Default{}.BusinessEvaluation(text)
	assert.Equal(t, 82, got.FeasibilityScore)
	assert.Equal(t, []string{"Good market fit", "Strong team"}, got.Strengths)
	assert.Equal(t, []string{"Thin margins"}, got.Weaknesses)
	assert.Equal(t, []string{"Export markets"}, got.Opportunities)
	assert.Equal(t, []string{"Licensing"}, got.EntryBarriers)
	assert.Equal(t, []string{"Interview ten customers", "Price the MVP"}, got.NextSteps)
}

func TestDefault_BusinessEvaluation_JSONAndEmpty(t *testing.T) {
	got := Default{}.BusinessEvaluation(`{"score": 71, "strengths": ["Niche"], "weaknesses": []}`)
	assert.Equal(t, 71, got.FeasibilityScore)
	assert.Equal(t, []string{"Niche"}, got.Strengths)
	assert.Equal(t, []string{}, got.Weaknesses)

	empty := Default{}.BusinessEvaluation("")
	assert.Equal(t, DefaultScore, empty.FeasibilityScore)
	assert.Equal(t, []string{}, empty.Strengths)
	assert.Equal(t, []string{}, empty.NextSteps)
}
