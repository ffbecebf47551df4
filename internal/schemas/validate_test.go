package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructuredRequirements(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantError bool
	}{
		{
			name:      "Empty object is minimal but valid",
			json:      `{}`,
			wantError: false,
		},
		{
			name: "Full document",
			json: `{
				"title": "Payment Platform",
				"assumptions": ["a"],
				"outOfScope": ["b"],
				"sections": [
					{"heading": "Auth", "bullets": ["login"], "subheadings": [{"title": "MFA", "bullets": ["totp"]}]}
				],
				"figures": [{"caption": "Context diagram"}]
			}`,
			wantError: false,
		},
		{
			name:      "Title has wrong type",
			json:      `{"title": 42}`,
			wantError: true,
		},
		{
			name:      "Section missing heading",
			json:      `{"sections": [{"bullets": ["x"]}]}`,
			wantError: true,
		},
		{
			name:      "Assumptions holds non-strings",
			json:      `{"assumptions": [1, 2]}`,
			wantError: true,
		},
		{
			name:      "Figure missing caption",
			json:      `{"figures": [{}]}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStructuredRequirements(tt.json)
			if tt.wantError {
				var ve *ValidationError
				require.Error(t, err)
				assert.True(t, errors.As(err, &ve))
				assert.NotEmpty(t, ve.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
