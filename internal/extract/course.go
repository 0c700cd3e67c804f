package extract

import (
	"regexp"
	"strings"
)

// Course is one course recommendation parsed from a completion.
type Course struct {
	SkillName   string `json:"skillName"`
	CourseTitle string `json:"courseTitle"`
	Platform    string `json:"platform"`
	Cost        string `json:"cost,omitempty"`
	Duration    string `json:"duration,omitempty"`
	URL         string `json:"url,omitempty"`
}

var (
	urlRE      = regexp.MustCompile(`https?://[^\s)\]]+`)
	parenRE    = regexp.MustCompile(`\(([^()]*)\)\s*$`)
	costRE     = regexp.MustCompile(`(?i)^(?:free|paid|\$\s*\d[\d,.]*|\d[\d,.]*\s*(?:usd|eur|\$))`)
	durationRE = regexp.MustCompile(`(?i)\d+\s*(?:-\s*\d+\s*)?(?:hours?|hrs?|days?|weeks?|months?)\b`)
	// dashSepRE separates "Skill - Course" when no colon is present.
	dashSepRE = regexp.MustCompile(`\s+[-–—]\s+`)
)

// ParseCourse parses a recommendation line such as
//
//	SQL: Databases for Data Science (Coursera, free, 4 weeks) https://coursera.org/x
//
// into its parts. Missing parts are left empty; when no skill prefix is
// present SkillName is empty and the whole line is the course title.
func ParseCourse(item string) Course {
	var c Course
	s := strings.TrimSpace(bulletRE.ReplaceAllString(item, ""))

	if u := urlRE.FindString(s); u != "" {
		c.URL = strings.TrimRight(u, ".,;")
		s = strings.TrimSpace(strings.Replace(s, u, "", 1))
		s = strings.TrimRight(s, " -–—:")
	}

	if m := parenRE.FindStringSubmatchIndex(s); m != nil {
		inner := s[m[2]:m[3]]
		s = strings.TrimSpace(s[:m[0]])
		for i, part := range strings.Split(inner, ",") {
			part = strings.TrimSpace(part)
			switch {
			case part == "":
			case costRE.MatchString(part):
				c.Cost = part
			case durationRE.MatchString(part):
				c.Duration = part
			case i == 0 || c.Platform == "":
				c.Platform = part
			}
		}
	}

	if i := strings.Index(s, ":"); i > 0 {
		c.SkillName = cleanItem(s[:i])
		s = s[i+1:]
	} else if loc := dashSepRE.FindStringIndex(s); loc != nil {
		c.SkillName = cleanItem(s[:loc[0]])
		s = s[loc[1]:]
	}
	c.CourseTitle = strings.Trim(cleanItem(s), `"'`)
	return c
}

// SkillName reduces an extracted list item such as "SQL - querying data"
// or "Statistics (hypothesis testing)" to the skill it names.
func SkillName(item string) string {
	s := item
	if i := strings.Index(s, ":"); i > 0 {
		s = s[:i]
	}
	if loc := dashSepRE.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	if i := strings.Index(s, "("); i > 0 {
		s = s[:i]
	}
	return cleanItem(s)
}
