package ai

import (
	"fmt"
	"strings"
)

// GetRollUpPrompt returns the system prompt for weekly roll-up summarization.
func GetRollUpPrompt() string {
	return `You are an engineering manager's assistant. Summarize each person's weekly accomplishments.

<instructions>
1. For each person, write a markdown bullet summary focused on outcomes and impact
2. Merge duplicate or near-duplicate items into a single bullet
3. Leave out trivia (meetings attended, minor chores) unless nothing else exists
4. NEVER invent facts that are not in the data
5. Respond with a single JSON object, no prose before or after
6. The object has exactly two top-level keys: "subjects" (required) and "themes" (optional)
7. Each subject is {"badge": <number>, "name": <string>, "summary_md": <string>, "highlights": [<string>], "blockers": [<string>], "next_focus": [<string>]}
8. "highlights", "blockers" and "next_focus" may be omitted when empty
</instructions>`
}

// GetRollUpUserPrompt returns the user prompt wrapping the corpus.
func GetRollUpUserPrompt(from, to string, includeThemes bool, corpus string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize the accomplishments below for the window %s to %s.\n", from, to)
	if includeThemes {
		sb.WriteString("Also return 3-7 short cross-cutting team themes under the \"themes\" key.\n")
	}
	sb.WriteString("\n=== DATA START ===\n")
	sb.WriteString(corpus)
	sb.WriteString("\n=== DATA END ===\n")
	return sb.String()
}

// RollUpSchema is the JSON schema sent with strict-mode requests.
func RollUpSchema() StructuredSchema {
	subject := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"badge":      map[string]any{"type": "integer"},
			"name":       map[string]any{"type": "string"},
			"summary_md": map[string]any{"type": "string"},
			"highlights": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"blockers":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"next_focus": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required":             []string{"badge", "name", "summary_md"},
		"additionalProperties": false,
	}
	return StructuredSchema{
		Name: "weekly_roll_up",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"subjects": map[string]any{"type": "array", "items": subject},
				"themes":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required":             []string{"subjects"},
			"additionalProperties": false,
		},
	}
}
