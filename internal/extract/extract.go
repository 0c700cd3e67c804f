// Package extract turns free-text AI completions into structured fields.
//
// Extraction is best effort: nothing here returns an error for malformed
// text. A missing score yields DefaultScore, a missing heading yields an
// empty list.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultScore is returned by ExtractScore when the text carries no score.
const DefaultScore = 65

// scoreRE matches "82/100", "82 / 100", "82%" and "82 out of 100". The
// number must not continue a word or the fraction of a decimal ("3.5%").
var scoreRE = regexp.MustCompile(`(?i)(?:^|[^\w.])(\d{1,3})\s*(?:/\s*100\b|%|out\s+of\s+100\b)`)

// ExtractScore returns the first score found in text, or DefaultScore.
// The value is not range-checked; see ClampScore.
func ExtractScore(text string) int {
	m := scoreRE.FindStringSubmatch(text)
	if m == nil {
		return DefaultScore
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultScore
	}
	return n
}

// ClampScore bounds n to [0,100].
func ClampScore(n int) int {
	switch {
	case n < 0:
		return 0
	case n > 100:
		return 100
	}
	return n
}

var (
	// decorRE strips leading markdown decoration from a heading line:
	// quote markers, "##", emphasis and an optional numbering like "2.".
	decorRE = regexp.MustCompile(`^[\s>#]*(?:\d+[.)]\s+)?[*_\s]*`)

	// nextHeadingRE recognizes the start of another section: a capitalized
	// label ending in a colon, or any markdown heading.
	nextHeadingRE = regexp.MustCompile(`^(?:\s*#{1,6}\s+\S|[\s>]*[*_]*[A-Z][A-Za-z0-9 &/()'-]{0,48}[*_]*:(?:[\s*_]|$))`)

	// bulletRE matches a leading list marker.
	bulletRE = regexp.MustCompile(`^\s*(?:[-•*+]|\d+[.)])\s+`)

	// sentenceRE splits on sentence-ending periods.
	sentenceRE = regexp.MustCompile(`\.\s+`)
)

// ExtractSection returns the items listed under heading in text.
//
// The heading matches case-insensitively at the start of a line, optionally
// decorated ("**Strengths:**", "## Strengths"), followed by a colon or the
// end of the line. A heading found mid-line is accepted when followed by a
// colon. The section runs until a blank line, the next capitalized
// "Heading:" line or the end of text. Its content is split on bullet
// markers and sentence-ending periods; items are trimmed and empty items
// dropped. A missing heading yields an empty, non-nil slice.
func ExtractSection(text, heading string) []string {
	heading = strings.TrimSpace(heading)
	if heading == "" || text == "" {
		return []string{}
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	start, first, ok := findHeading(lines, heading)
	if !ok {
		return []string{}
	}

	var body []string
	if strings.TrimSpace(first) != "" {
		body = append(body, first)
	}
	for i := start + 1; i < len(lines); i++ {
		ln := lines[i]
		if strings.TrimSpace(ln) == "" {
			// A heading alone on its line may be followed by a blank line
			// before its items.
			if len(body) == 0 {
				continue
			}
			break
		}
		if !bulletRE.MatchString(ln) && nextHeadingRE.MatchString(ln) {
			break
		}
		body = append(body, ln)
	}
	return splitItems(body)
}

// findHeading locates heading in lines. It returns the heading's line index
// and whatever follows the heading's colon on that line.
func findHeading(lines []string, heading string) (int, string, bool) {
	q := regexp.QuoteMeta(heading)
	atStart := regexp.MustCompile(`(?i)^` + q + `[\s*_]*(:|$)`)
	inline := regexp.MustCompile(`(?i)\b` + q + `[*_]*\s*:`)

	for i, ln := range lines {
		rest := decorRE.ReplaceAllString(ln, "")
		if loc := atStart.FindStringIndex(rest); loc != nil {
			return i, strings.TrimLeft(rest[loc[1]:], " \t*_"), true
		}
	}

	// Fallback: "... Strengths: a, b" in the middle of a line.
	for i, ln := range lines {
		if loc := inline.FindStringIndex(ln); loc != nil {
			return i, strings.TrimLeft(ln[loc[1]:], " \t*_"), true
		}
	}
	return 0, "", false
}

// splitItems turns section lines into trimmed items.
func splitItems(lines []string) []string {
	out := []string{}
	for _, ln := range lines {
		ln = bulletRE.ReplaceAllString(ln, "")
		for _, part := range sentenceRE.Split(ln, -1) {
			item := cleanItem(part)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// cleanItem trims whitespace, emphasis markers and trailing periods.
func cleanItem(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_")
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ".")
	return strings.TrimSpace(s)
}
