package service

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// previewLimit bounds how much of an unrecognized reply reaches the logs.
const previewLimit = 400

// normalizeSummary coerces a model reply into the canonical roll-up
// shape. Recognizers run in order; the first match wins.
func normalizeSummary(reply string) (SummaryResult, error) {
	for _, raw := range decodeReplyJSON(reply) {
		switch v := raw.(type) {
		case map[string]any:
			if result, ok := mapCanonical(v); ok {
				return result, nil
			}
			if result, ok := mapTeamRollUp(v); ok {
				return result, nil
			}
			if result, ok := mapIndividuals(v); ok {
				return result, nil
			}
		case []any:
			if result, ok := mapBareList(v); ok {
				return result, nil
			}
		}
	}

	return SummaryResult{}, malformed(reply)
}

// decodeReplyJSON pulls JSON document candidates out of a reply that
// may wrap them in prose or code fences. Models do that often enough
// that this is cheaper than asking them not to. The
// first-"{"-to-last-"}" span comes first so stray brackets in
// surrounding prose cannot hijack an object reply; the array span
// still catches bare lists, whose first "{" sits inside the list.
func decodeReplyJSON(reply string) []any {
	var candidates []any
	if start := strings.Index(reply, "{"); start >= 0 {
		if end := strings.LastIndex(reply, "}"); end > start {
			var raw any
			if err := json.Unmarshal([]byte(reply[start:end+1]), &raw); err == nil {
				candidates = append(candidates, raw)
			}
		}
	}
	if start := strings.Index(reply, "["); start >= 0 {
		if end := strings.LastIndex(reply, "]"); end > start {
			var raw any
			if err := json.Unmarshal([]byte(reply[start:end+1]), &raw); err == nil {
				candidates = append(candidates, raw)
			}
		}
	}
	return candidates
}

// mapCanonical accepts the {subjects, themes?} shape directly.
func mapCanonical(obj map[string]any) (SummaryResult, bool) {
	items, ok := obj["subjects"].([]any)
	if !ok {
		return SummaryResult{}, false
	}
	return mapSubjectList(items, 0, stringList(obj["themes"]))
}

// mapTeamRollUp unwraps {team_roll_up:{individual_summaries, team_themes?}}.
func mapTeamRollUp(obj map[string]any) (SummaryResult, bool) {
	wrapper, ok := obj["team_roll_up"].(map[string]any)
	if !ok {
		return SummaryResult{}, false
	}
	items, ok := wrapper["individual_summaries"].([]any)
	if !ok {
		return SummaryResult{}, false
	}
	themes := stringList(wrapper["team_themes"])
	if themes == nil {
		themes = stringList(wrapper["themes"])
	}
	return mapSubjectList(items, 0, themes)
}

// mapIndividuals unwraps the flatter {individuals:[...]} shape.
func mapIndividuals(obj map[string]any) (SummaryResult, bool) {
	items, ok := obj["individuals"].([]any)
	if !ok {
		return SummaryResult{}, false
	}
	themes := stringList(obj["themes"])
	if themes == nil {
		themes = stringList(obj["team_themes"])
	}
	return mapSubjectList(items, 0, themes)
}

// mapBareList accepts a top-level list of subject-like objects, keyed by
// position when no identifier is parseable.
func mapBareList(items []any) (SummaryResult, bool) {
	if len(items) == 0 {
		return SummaryResult{}, false
	}
	first, ok := items[0].(map[string]any)
	if !ok {
		return SummaryResult{}, false
	}
	if !hasSubjectFields(first) {
		return SummaryResult{}, false
	}
	return mapSubjectList(items, 1, nil)
}

// mapSubjectList maps raw subject objects. positionBase > 0 enables
// positional badge synthesis for unparseable identifiers.
func mapSubjectList(items []any, positionBase int, themes []string) (SummaryResult, bool) {
	result := SummaryResult{Themes: themes}
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return SummaryResult{}, false
		}
		subject, ok := mapSubject(obj)
		if !ok {
			return SummaryResult{}, false
		}
		if subject.Badge == 0 {
			if positionBase == 0 {
				return SummaryResult{}, false
			}
			subject.Badge = int64(positionBase + i)
		}
		result.Subjects = append(result.Subjects, subject)
	}
	if len(result.Subjects) == 0 {
		return SummaryResult{}, false
	}
	return result, true
}

func mapSubject(obj map[string]any) (SummarySubject, bool) {
	subject := SummarySubject{
		Name:       firstString(obj, "name", "display_name"),
		SummaryMD:  firstString(obj, "summary_md", "summary"),
		Highlights: stringList(obj["highlights"]),
		Blockers:   stringList(obj["blockers"]),
		NextFocus:  stringList(obj["next_focus"]),
	}
	if subject.SummaryMD == "" {
		return SummarySubject{}, false
	}

	for _, key := range []string{"badge", "employee_id", "id", "identifier"} {
		if badge, ok := parseBadge(obj[key]); ok {
			subject.Badge = badge
			break
		}
	}
	return subject, true
}

func hasSubjectFields(obj map[string]any) bool {
	return firstString(obj, "name", "display_name") != "" ||
		firstString(obj, "summary_md", "summary") != ""
}

// parseBadge accepts a number or a string carrying digits, e.g. "E-123".
func parseBadge(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		if t > 0 {
			return int64(t), true
		}
	case string:
		var n int64
		seen := false
		for _, r := range t {
			if r >= '0' && r <= '9' {
				n = n*10 + int64(r-'0')
				seen = true
			}
		}
		if seen && n > 0 {
			return n, true
		}
	}
	return 0, false
}

func firstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func malformed(reply string) error {
	return &MalformedResponseError{Preview: truncate(strings.TrimSpace(reply), previewLimit)}
}

// truncate shortens s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
