package preprocess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "Plain lines",
			input: "Need login\nNeed payment",
			want:  []string{"Need login", "Need payment"},
		},
		{
			name:  "Bulleted lines with duplicate",
			input: "- A\n- B\n- A",
			want:  []string{"A", "B"},
		},
		{
			name:  "Inline numbered list",
			input: "1. Buy milk 2. Walk dog",
			want:  []string{"Buy milk", "Walk dog"},
		},
		{
			name:  "Numbered with parenthesis",
			input: "1) First thing 2) Second thing",
			want:  []string{"First thing", "Second thing"},
		},
		{
			name:  "Star bullets",
			input: "* One\n* Two",
			want:  []string{"One", "Two"},
		},
		{
			name:  "Mixed markers and blank lines",
			input: "Intro line\n\n- bullet one\n3. numbered one\n",
			want:  []string{"Intro line", "bullet one", "numbered one"},
		},
		{
			name:  "Windows line endings",
			input: "First\r\nSecond\r\n",
			want:  []string{"First", "Second"},
		},
		{
			name:  "Hyphen inside a word is not a separator",
			input: "Support e-mail notifications",
			want:  []string{"Support e-mail notifications"},
		},
		{
			name:  "Empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "Whitespace only",
			input: "   \n\t\n",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preprocess(tt.input))
		})
	}
}

// Preprocessing already-clean output must not split anything further.
func TestPreprocessIdempotent(t *testing.T) {
	inputs := []string{
		"1. Buy milk 2. Walk dog\n- A\n- B",
		"Need login\nNeed payment gateway\n* Need audit log",
		"1) alpha 2) beta 3) gamma",
	}

	for _, input := range inputs {
		first := Preprocess(input)
		second := Preprocess(strings.Join(first, "\n"))
		assert.Equal(t, first, second, "input %q", input)
	}
}

func TestPreprocessKeepsFirstOccurrence(t *testing.T) {
	got := Preprocess("- B\n- A\n- B\n- A")
	assert.Equal(t, []string{"B", "A"}, got)
}
