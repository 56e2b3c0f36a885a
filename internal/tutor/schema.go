package tutor

import "github.com/abhisek/sprinklerprep/internal/llm"

// MnemonicSchema defines the JSON schema for memory aid generation.
var MnemonicSchema = &llm.Schema{
	Name:        "mnemonic",
	Description: "A memory aid for a fire code exam fact",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "The memory aid itself: acronym, rhyme, or vivid phrase",
			},
			"expansion": map[string]any{
				"type":        "string",
				"description": "How the mnemonic maps back to the fact and its code reference",
			},
		},
		"required":             []any{"mnemonic", "expansion"},
		"additionalProperties": false,
	},
}
