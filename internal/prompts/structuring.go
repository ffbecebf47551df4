package prompts

import (
	"fmt"
	"strings"
)

const structuringFile = "structuring.json"

// System returns the fixed system prompt instructing the model to act as a
// solution architect and return strict JSON matching the structured
// requirements shape.
func System() string {
	return MustGet(structuringFile, "system")
}

// User composes the user prompt from the ordered requirement points, an
// optional template text, and the target natural language. Pure string
// composition, no side effects.
func User(points []string, template, language string) string {
	var numbered strings.Builder
	for i, p := range points {
		fmt.Fprintf(&numbered, "%d. %s\n", i+1, p)
	}

	templateBlock := ""
	if template != "" {
		templateBlock = Format(MustGet(structuringFile, "template-block"), map[string]string{
			"Template": template,
		})
	}

	return Format(MustGet(structuringFile, "user"), map[string]string{
		"TemplateBlock": templateBlock,
		"Points":        strings.TrimRight(numbered.String(), "\n"),
		"Language":      language,
	})
}
