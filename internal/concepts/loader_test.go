package concepts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConceptFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "concepts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConceptFile(t, `
project: networking
concepts:
  - id: tcp
    name: TCP
    definition: Reliable byte-stream transport.
    tier: 1
    questions:
      - id: tcp-q1
        text: Which transport guarantees ordering?
        format: multiple_choice
        answer: TCP
        choices: [TCP, UDP]
  - id: http
    name: HTTP
    definition: Request/response protocol over TCP.
    tier: 2
    prerequisites: [tcp]
    questions:
      - id: http-q1
        text: HTTP is stateless.
        format: true_false
        answer: "true"
`)

	list, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "tcp", list[0].ID)
	assert.Equal(t, TierCore, list[0].Tier)
	assert.Equal(t, FormatMultipleChoice, list[0].Questions[0].Format)
	assert.Equal(t, []string{"TCP", "UDP"}, list[0].Questions[0].Choices)

	assert.Equal(t, TierSupporting, list[1].Tier)
	assert.Equal(t, []string{"tcp"}, list[1].Prerequisites)
	assert.Equal(t, FormatTrueFalse, list[1].Questions[0].Format)
}

func TestLoadFileRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "empty id",
			content: `
concepts:
  - name: nameless
    tier: 1
`,
			wantErr: "empty id",
		},
		{
			name: "tier out of range",
			content: `
concepts:
  - id: a
    tier: 4
`,
			wantErr: "tier 4 out of range",
		},
		{
			name: "unknown question format",
			content: `
concepts:
  - id: a
    tier: 1
    questions:
      - id: a-q1
        format: essay
`,
			wantErr: "unknown format",
		},
		{
			name: "unknown prerequisite",
			content: `
concepts:
  - id: a
    tier: 1
    prerequisites: [missing]
`,
			wantErr: "validate concept graph",
		},
		{
			name:    "malformed yaml",
			content: "concepts: [",
			wantErr: "parse concept file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConceptFile(t, tt.content)
			_, err := LoadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read concept file")
}
