package services

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/meghannnnnnn/Resumex/internal/models"
)

// Outcome is what normalization produces: either an ordered list of records
// (OK) or the original model text when no JSON could be recovered. Callers
// must branch on OK; there is no error path.
type Outcome struct {
	OK    bool
	Items []json.RawMessage
	Raw   string
}

// wrapperKeys maps each request kind to the property name the model
// sometimes nests its array under instead of returning a bare array.
var wrapperKeys = map[GenerationKind]string{
	KindFindJobs:          "jobs",
	KindGenerateQuestions: "questions",
}

// CleanModelJSON strips markdown code fences the model likes to wrap its
// JSON in, e.g. "```json\n[...]\n```".
func CleanModelJSON(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// Normalize coerces raw model output into an ordered list of records.
//
// The model is asked for a JSON array but is free text underneath, so every
// recoverable shape is accepted: a bare array passes through unchanged, an
// object is unwrapped via the kind's wrapper key (or its first array-valued
// property in sorted key order), and anything else that parses becomes a
// single-element list. Text that does not parse at all comes back as a raw
// fallback carrying the original response verbatim.
func Normalize(kind GenerationKind, raw string) Outcome {
	cleaned := CleanModelJSON(raw)
	if !json.Valid([]byte(cleaned)) || cleaned == "" {
		return Outcome{Raw: raw}
	}

	switch cleaned[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
			return Outcome{Raw: raw}
		}
		return Outcome{OK: true, Items: items}

	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
			return Outcome{Raw: raw}
		}
		if items, ok := nestedArray(obj, kind); ok {
			return Outcome{OK: true, Items: items}
		}
		// No nested array anywhere: treat the object as a single record.
		return Outcome{OK: true, Items: []json.RawMessage{json.RawMessage(cleaned)}}

	default:
		// Valid JSON scalar. Wrap it so the caller always gets a list.
		return Outcome{OK: true, Items: []json.RawMessage{json.RawMessage(cleaned)}}
	}
}

// nestedArray finds the array the model hid inside an object response.
// The kind's wrapper key always wins; otherwise keys are scanned in sorted
// order so ambiguous responses resolve the same way every time.
func nestedArray(obj map[string]json.RawMessage, kind GenerationKind) ([]json.RawMessage, bool) {
	if wrapped, ok := obj[wrapperKeys[kind]]; ok {
		if items, ok := asArray(wrapped); ok {
			return items, true
		}
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if items, ok := asArray(obj[k]); ok {
			return items, true
		}
	}
	return nil, false
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return nil, false
	}
	return items, true
}

// DecodeJobMatches turns normalized records into typed job matches.
// Malformed records degrade to placeholders instead of failing: the UI
// should always have something to render.
func DecodeJobMatches(items []json.RawMessage) []models.JobMatch {
	matches := make([]models.JobMatch, 0, len(items))
	for _, item := range items {
		var rec struct {
			Title          string   `json:"title"`
			Description    string   `json:"description"`
			RequiredSkills []string `json:"requiredSkills"`
			Skills         []string `json:"skills"`
		}
		// A record that isn't an object still yields a placeholder entry.
		_ = json.Unmarshal(item, &rec)

		match := models.JobMatch{
			Title:          rec.Title,
			Description:    rec.Description,
			RequiredSkills: rec.RequiredSkills,
		}
		if match.Title == "" {
			match.Title = "Job Match"
		}
		if match.Description == "" {
			match.Description = "No description available"
		}
		if match.RequiredSkills == nil {
			match.RequiredSkills = rec.Skills
		}
		if match.RequiredSkills == nil {
			match.RequiredSkills = []string{}
		}
		matches = append(matches, match)
	}
	return matches
}

// DecodeInterviewQuestions is the question/answer counterpart of
// DecodeJobMatches.
func DecodeInterviewQuestions(items []json.RawMessage) []models.InterviewQA {
	questions := make([]models.InterviewQA, 0, len(items))
	for _, item := range items {
		var qa models.InterviewQA
		_ = json.Unmarshal(item, &qa)

		if qa.Question == "" {
			qa.Question = "Interview Question"
		}
		if qa.Answer == "" {
			qa.Answer = "No answer available"
		}
		questions = append(questions, qa)
	}
	return questions
}
