package analysis

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	jsonFencePattern = regexp.MustCompile("(?s)```json(.*?)```")
	codeFencePattern = regexp.MustCompile("(?s)```(.*?)```")
	// First "{" to last "}" in the whole text, not balanced-brace matching.
	// Two separate objects in one completion get swallowed into a single
	// invalid span and fall through to the next step.
	braceSpanPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

// Normalize extracts a JSON value from an arbitrary model completion. The
// model tends to wrap its JSON in prose or markdown fences, so a cascade of
// progressively looser extractions is tried; the first one that parses wins.
// Normalize never fails: when nothing parses, the raw text is returned
// wrapped in a single-key object.
func Normalize(text string) interface{} {
	if m := jsonFencePattern.FindStringSubmatch(text); m != nil {
		if v, err := parseJSON(m[1]); err == nil {
			return v
		}
	}

	if m := codeFencePattern.FindStringSubmatch(text); m != nil {
		if v, err := parseJSON(m[1]); err == nil {
			return v
		}
	}

	if span := braceSpanPattern.FindString(text); span != "" {
		if v, err := parseJSON(span); err == nil {
			return v
		}
	}

	if v, err := parseJSON(text); err == nil {
		return v
	}

	return map[string]interface{}{"raw": text}
}

func parseJSON(s string) (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &v); err != nil {
		return nil, err
	}
	return v, nil
}
