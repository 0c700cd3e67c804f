package services

import (
	"fmt"
	"strings"
)

// System prompts per AI purpose. Wording is free to change; the structure the
// extract package relies on (JSON keys, section headings) is not.
const (
	systemCareer = `You are an experienced career counselor. Recommend careers that fit the person.
Respond with a JSON object {"careers": [...]} where each career has the keys
careerTitle, description, salaryRange, growthRate, fitScore (0-100) and requiredSkills (array of strings).`

	systemSkillGap = `You are a career development expert. Compare the current skills with what the target career needs.
Respond with a JSON object with the keys missingSkills (array of strings), transferableSkills (array of strings),
recommendedCourses (array of {skillName, courseTitle, platform, cost, duration, url}), readinessScore (0-100) and summary.`

	systemJobMatch = `You are a recruiting expert. Suggest realistic job openings for the candidate.
Respond with a JSON object {"jobs": [...]} where each job has the keys jobTitle, company, description,
matchPercentage (0-100), matchTier, salary, location, requiredSkills, userSkillMatch, skillGaps,
developmentPlan {prioritySkills, certifications, experienceBuilding} and careerProgression {nextRoles, timelineEstimate}.`

	systemResume = `You are a professional resume writer. Rewrite the resume to be concise, achievement oriented and ATS friendly.
Respond with a JSON object with the keys optimizedContent (string) and suggestions (array of strings).`

	systemBusiness = `You are an entrepreneurship advisor. Evaluate the business idea honestly.
Give a feasibility score as "NN/100", then sections titled Strengths:, Weaknesses:, Opportunities:,
Entry Barriers: and Next Steps:, each a bulleted list, followed by a short Summary:.`

	systemContent = `You are a helpful writing assistant. Produce clear, well structured content for the request.`
)

// systemChat returns the coaching persona for a chat mode.
func systemChat(mode string) string {
	base := "You are an AI career coach. Give practical, specific and encouraging advice about careers, skills, job search and professional growth."
	switch mode {
	case "enhanced":
		return base + " Go deeper than usual: reference industry trends, concrete resources and step-by-step plans."
	case "magic-loops":
		return base + " Answer as a short structured workflow of numbered steps the user can repeat."
	}
	return base
}

// list renders values for a prompt, or a placeholder when empty.
func list(values []string) string {
	clean := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return "none specified"
	}
	return strings.Join(clean, ", ")
}

// orNone renders a single optional value for a prompt.
func orNone(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "not specified"
	}
	return v
}

func careerPrompt(in CareerInput) string {
	return fmt.Sprintf(
		"Skills: %s\nInterests: %s\nEducation level: %s\nExperience: %s\nRecommend 3 to 5 careers.",
		list(in.Skills), list(in.Interests), orNone(in.EducationLevel), orNone(in.Experience),
	)
}

func skillGapPrompt(in GapInput) string {
	return fmt.Sprintf("Target career: %s\nCurrent skills: %s\nIdentify the gap and recommend courses.",
		in.TargetCareer, list(in.CurrentSkills))
}

func jobMatchPrompt(in MatchInput) string {
	return fmt.Sprintf("Skills: %s\nExperience: %s\nPreferences: %s\nSuggest 3 to 5 matching jobs.",
		list(in.UserSkills), orNone(in.UserExperience), orNone(in.Preferences))
}

func resumePrompt(r string, in OptimizeInput) string {
	var b strings.Builder
	if in.TargetRole != "" {
		fmt.Fprintf(&b, "Target role: %s\n", in.TargetRole)
	}
	if in.JobDescription != "" {
		fmt.Fprintf(&b, "Job description:\n%s\n\n", in.JobDescription)
	}
	b.WriteString("Resume:\n")
	b.WriteString(r)
	return b.String()
}

func businessPrompt(in BusinessIdeaInput) string {
	return fmt.Sprintf("Business idea: %s\nIndustry: %s\nBudget: %s\nFounder experience: %s",
		in.Idea, orNone(in.Industry), orNone(in.Budget), orNone(in.Experience))
}
