package extract

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned by DecodeJSON when text holds no decodable payload.
var ErrNoJSON = errors.New("extract: no JSON payload in text")

var fenceRE = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")

// DecodeJSON decodes the JSON payload carried by an AI completion into v.
// It accepts bare JSON, a fenced ```json block, or JSON surrounded by prose
// (the span from the first '{' or '[' to the matching last '}' or ']').
func DecodeJSON(text string, v any) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrNoJSON
	}
	for _, candidate := range jsonCandidates(text) {
		if err := json.Unmarshal([]byte(candidate), v); err == nil {
			return nil
		}
	}
	return ErrNoJSON
}

func jsonCandidates(text string) []string {
	out := []string{text}
	if m := fenceRE.FindStringSubmatch(text); m != nil {
		out = append(out, strings.TrimSpace(m[1]))
	}
	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		i := strings.Index(text, pair[0])
		j := strings.LastIndex(text, pair[1])
		if i >= 0 && j > i {
			out = append(out, text[i:j+1])
		}
	}
	return out
}
