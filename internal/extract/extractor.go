package extract

import (
	"strings"
)

// Section headings the prompts ask the model to use.
const (
	HeadingMissingSkills  = "Missing Skills"
	HeadingTransferable   = "Transferable Skills"
	HeadingCourses        = "Recommended Courses"
	HeadingSummary        = "Summary"
	HeadingStrengths      = "Strengths"
	HeadingWeaknesses     = "Weaknesses"
	HeadingOpportunities  = "Opportunities"
	HeadingEntryBarriers  = "Entry Barriers"
	HeadingNextSteps      = "Next Steps"
	HeadingSuggestions    = "Suggestions"
	HeadingOptimizedDraft = "Optimized Resume"
)

// GapAnalysis is the structured result of a skill-gap completion.
type GapAnalysis struct {
	TargetCareer       string   `json:"targetCareer"`
	CurrentSkills      []string `json:"currentSkills"`
	MissingSkills      []string `json:"missingSkills"`
	TransferableSkills []string `json:"transferableSkills"`
	Courses            []Course `json:"recommendedCourses"`
	ReadinessScore     int      `json:"readinessScore"`
	Summary            string   `json:"summary"`
	Text               string   `json:"text,omitempty"`
	StructuredResponse bool     `json:"structured"`
}

// BusinessEvaluation is the structured result of a business-idea completion.
type BusinessEvaluation struct {
	FeasibilityScore int      `json:"feasibilityScore"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	Opportunities    []string `json:"opportunities"`
	EntryBarriers    []string `json:"entryBarriers"`
	NextSteps        []string `json:"nextSteps"`
	Summary          string   `json:"summary"`
	Text             string   `json:"text,omitempty"`
}

// Extractor shapes completions into structured results. Implementations never
// fail; text lacking the expected structure yields empty lists and defaults.
type Extractor interface {
	GapAnalysis(text, targetCareer string, current []string) GapAnalysis
	BusinessEvaluation(text string) BusinessEvaluation
}

// Default prefers a structured JSON payload in the completion and falls back
// to scraping headed sections from prose.
type Default struct{}

var _ Extractor = Default{}

type gapPayload struct {
	MissingSkills      []string `json:"missingSkills"`
	TransferableSkills []string `json:"transferableSkills"`
	Courses            []Course `json:"recommendedCourses"`
	ReadinessScore     *int     `json:"readinessScore"`
	Summary            string   `json:"summary"`
}

// GapAnalysis implements Extractor.
func (Default) GapAnalysis(text, targetCareer string, current []string) GapAnalysis {
	out := GapAnalysis{
		TargetCareer:  targetCareer,
		CurrentSkills: nonNil(current),
		Text:          text,
	}

	var p gapPayload
	if err := DecodeJSON(text, &p); err == nil && (len(p.MissingSkills) > 0 || len(p.Courses) > 0) {
		out.MissingSkills = cleanList(p.MissingSkills)
		out.TransferableSkills = cleanList(p.TransferableSkills)
		out.Courses = cleanCourses(p.Courses)
		out.ReadinessScore = DefaultScore
		if p.ReadinessScore != nil {
			out.ReadinessScore = *p.ReadinessScore
		}
		out.Summary = strings.TrimSpace(p.Summary)
		out.StructuredResponse = true
		return out
	}

	missing := ExtractSection(text, HeadingMissingSkills)
	out.MissingSkills = make([]string, 0, len(missing))
	for _, item := range missing {
		if name := SkillName(item); name != "" {
			out.MissingSkills = append(out.MissingSkills, name)
		}
	}
	out.TransferableSkills = ExtractSection(text, HeadingTransferable)

	rawCourses := ExtractSection(text, HeadingCourses)
	courses := make([]Course, 0, len(rawCourses))
	for _, item := range rawCourses {
		courses = append(courses, ParseCourse(item))
	}
	out.Courses = cleanCourses(courses)
	out.ReadinessScore = ExtractScore(text)
	out.Summary = strings.Join(ExtractSection(text, HeadingSummary), ". ")
	return out
}

type businessPayload struct {
	FeasibilityScore *int     `json:"feasibilityScore"`
	Score            *int     `json:"score"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	Opportunities    []string `json:"opportunities"`
	EntryBarriers    []string `json:"entryBarriers"`
	NextSteps        []string `json:"nextSteps"`
	Summary          string   `json:"summary"`
}

// BusinessEvaluation implements Extractor.
func (Default) BusinessEvaluation(text string) BusinessEvaluation {
	var p businessPayload
	if err := DecodeJSON(text, &p); err == nil && (len(p.Strengths) > 0 || len(p.Weaknesses) > 0) {
		score := DefaultScore
		switch {
		case p.FeasibilityScore != nil:
			score = *p.FeasibilityScore
		case p.Score != nil:
			score = *p.Score
		}
		return BusinessEvaluation{
			FeasibilityScore: score,
			Strengths:        cleanList(p.Strengths),
			Weaknesses:       cleanList(p.Weaknesses),
			Opportunities:    cleanList(p.Opportunities),
			EntryBarriers:    cleanList(p.EntryBarriers),
			NextSteps:        cleanList(p.NextSteps),
			Summary:          strings.TrimSpace(p.Summary),
			Text:             text,
		}
	}

	return BusinessEvaluation{
		FeasibilityScore: ExtractScore(text),
		Strengths:        ExtractSection(text, HeadingStrengths),
		Weaknesses:       ExtractSection(text, HeadingWeaknesses),
		Opportunities:    ExtractSection(text, HeadingOpportunities),
		EntryBarriers:    ExtractSection(text, HeadingEntryBarriers),
		NextSteps:        ExtractSection(text, HeadingNextSteps),
		Summary:          strings.Join(ExtractSection(text, HeadingSummary), ". "),
		Text:             text,
	}
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = cleanItem(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// cleanCourses drops courses without a title.
func cleanCourses(in []Course) []Course {
	out := make([]Course, 0, len(in))
	for _, c := range in {
		c.CourseTitle = strings.TrimSpace(c.CourseTitle)
		c.SkillName = strings.TrimSpace(c.SkillName)
		if c.CourseTitle == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
