package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  int
	}{
		{name: "bare array", reply: `[{"question":"Q","answer":"A"}]`, want: 1},
		{name: "json fence", reply: "```json\n[{\"a\":1},{\"a\":2}]\n```", want: 2},
		{name: "plain fence", reply: "```\n[{\"a\":1}]\n```\n", want: 1},
		{name: "empty array", reply: " [] ", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseRecords(tt.reply)
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
		})
	}
}

func TestParseRecords_Errors(t *testing.T) {
	for _, reply := range []string{
		"Sure! Here are your FAQs.",
		`{"question":"Q"}`,
		`[1,2,3]`,
		`[null]`,
		`null`,
		"",
	} {
		_, err := ParseRecords(reply)
		assert.True(t, errors.Is(err, ErrParse), "reply %q: %v", reply, err)
	}
}

func TestSystemPrompt_Language(t *testing.T) {
	assert.Contains(t, SystemPrompt("ja"), "Respond in Japanese (日本語).")
	assert.Contains(t, SystemPrompt("zh-TW"), "Traditional Chinese")
	assert.Contains(t, SystemPrompt("fr"), "Respond in English.")
	assert.Contains(t, SystemPrompt(""), "Always return valid JSON array only")
}
