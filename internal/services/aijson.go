package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/tbourn/go-career-backend/internal/extract"
)

// flexInt decodes a score written as 82, 82.5, "82", "82%" or "82/100".
// Anything unreadable decodes as extract.DefaultScore.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = flexInt(math.Round(f))
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*n = extract.DefaultScore
		return nil
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if v, err := strconv.Atoi(s); err == nil {
		*n = flexInt(v)
		return nil
	}
	*n = flexInt(extract.ExtractScore(s))
	return nil
}

// decodeList reads the array under key from a completion, accepting either
// {"key": [...]} or a bare array. Unreadable text yields an empty list.
func decodeList[T any](text, key string) []T {
	var wrapped map[string]json.RawMessage
	if extract.DecodeJSON(text, &wrapped) == nil {
		if raw, ok := wrapped[key]; ok {
			var out []T
			if json.Unmarshal(raw, &out) == nil && out != nil {
				return out
			}
		}
	}
	var bare []T
	if extract.DecodeJSON(text, &bare) == nil && bare != nil {
		return bare
	}
	return []T{}
}
