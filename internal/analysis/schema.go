package analysis

import "github.com/abhisek/tabuada/internal/llm"

// narrativeSchema defines the JSON schema for delegated narrative
// responses.
var narrativeSchema = &llm.Schema{
	Name: "session-narrative",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"narrative": map[string]any{
				"type":        "string",
				"description": "The full narrative report in markdown (headings, bold, italics, lists), addressed directly to the learner",
			},
		},
		"required":             []any{"narrative"},
		"additionalProperties": false,
	},
}
