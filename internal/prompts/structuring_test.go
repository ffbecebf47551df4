package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem(t *testing.T) {
	sys := System()
	assert.Contains(t, sys, "solution architect")
	assert.Contains(t, sys, "STRICT JSON")
	assert.Contains(t, sys, "outOfScope")
}

func TestUser(t *testing.T) {
	points := []string{"Need login", "Need payment"}

	prompt := User(points, "", "en")

	assert.Contains(t, prompt, "1. Need login")
	assert.Contains(t, prompt, "2. Need payment")
	assert.Contains(t, prompt, "entirely in en")
	assert.NotContains(t, prompt, "Follow this template")
}

func TestUserWithTemplate(t *testing.T) {
	prompt := User([]string{"Need audit log"}, "1. Overview\n2. Scope", "de")

	// Template block comes first, before the points.
	templateIdx := strings.Index(prompt, "Follow this template:")
	pointsIdx := strings.Index(prompt, "1. Need audit log")
	require.GreaterOrEqual(t, templateIdx, 0)
	require.Greater(t, pointsIdx, templateIdx)

	assert.Contains(t, prompt, "1. Overview\n2. Scope")
	assert.Contains(t, prompt, "entirely in de")
}

func TestUserNoPoints(t *testing.T) {
	prompt := User(nil, "", "en")
	assert.NotContains(t, prompt, "{{.")
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	out := Format("a {{.Known}} b {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "a x b {{.Unknown}}", out)
}

func TestGetMissingKey(t *testing.T) {
	_, err := Get(structuringFile, "nope")
	require.Error(t, err)
}
