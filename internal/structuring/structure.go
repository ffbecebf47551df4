// Package structuring invokes the language model to turn requirement points
// into a StructuredRequirements document.
package structuring

import (
	"context"
	"encoding/json"

	"reqdoc/internal/llm"
	"reqdoc/internal/schemas"
	"reqdoc/internal/types"
)

// Structure sends the prompts to the model and parses the response into a
// StructuredRequirements value. A single attempt is made; upstream failures
// are *APICallError, unparsable or schema-violating output is *ParseError.
// List fields are normalized so absent and empty are indistinguishable
// downstream.
func Structure(ctx context.Context, client llm.Client, systemPrompt, userPrompt string) (*types.StructuredRequirements, error) {
	responseText, err := client.GenerateJSON(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate structured requirements",
			Cause:   err,
		}
	}

	// Clean markdown code blocks if present
	responseText = llm.CleanJSONBlock(responseText)

	doc, err := parseJSONResponse(responseText)
	if err != nil {
		return nil, err
	}

	doc.Normalize()
	return doc, nil
}

// parseJSONResponse parses and schema-checks the JSON response
func parseJSONResponse(jsonText string) (*types.StructuredRequirements, error) {
	var doc types.StructuredRequirements
	if err := json.Unmarshal([]byte(jsonText), &doc); err != nil {
		return nil, &ParseError{
			Message: "model response is not valid JSON",
			Cause:   err,
		}
	}

	if err := schemas.ValidateStructuredRequirements(jsonText); err != nil {
		return nil, &ParseError{
			Message: "model response does not match the structured requirements shape",
			Cause:   err,
		}
	}

	return &doc, nil
}
