package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRemovesThinkSpans(t *testing.T) {
	raw := "<think>let me reason about this\nstep by step</think>The kingdom falls at dawn."
	assert.Equal(t, "The kingdom falls at dawn.", Sanitize(raw))
}

func TestSanitizeRemovesInstructionLeak(t *testing.T) {
	raw := "Response instructions: plain text only, no emojis or bold text.\n\nA city built on the bones of giants."
	assert.Equal(t, "A city built on the bones of giants.", Sanitize(raw))
}

func TestSanitizeRemovesCallSuffix(t *testing.T) {
	assert.Equal(t, "The last survivor", Sanitize("The last survivor #4821"))
	// 配对的裸数字与标记一起移除
	assert.Equal(t, "Chapter opens", Sanitize("Chapter opens 12 #12"))
}

func TestSanitizeStripsMarkdown(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "A **dark** ritual", "A dark ritual"},
		{"italic", "The *whispering* woods", "The whispering woods"},
		{"code", "Use the `rusted key`", "Use the rusted key"},
		{"heading", "## The Premise\nAn empire divided.", "The Premise\nAn empire divided."},
		{"link", "See [the map](http://example.com) for details", "See the map for details"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.in))
		})
	}
}

func TestSanitizeCollapsesWhitespace(t *testing.T) {
	raw := "First  act   begins.\n\n\n\nSecond act follows."
	assert.Equal(t, "First act begins.\n\nSecond act follows.", Sanitize(raw))
}

func TestSanitizeRemovesBareNumberAndDashLines(t *testing.T) {
	raw := "The hero rises.\n42\n-\nThe villain schemes."
	assert.Equal(t, "The hero rises.\nThe villain schemes.", Sanitize(raw))
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"<think>hmm</think>**Bold** start #99\n\n\n- \nplain tail",
		"Response instructions: no emojis\n\ncontent line\n\n-\n\nmore content",
		"## Title\n1\n2\ntext  with   spaces",
		"already clean text",
	}
	for _, raw := range inputs {
		once := Sanitize(raw)
		assert.Equal(t, once, Sanitize(once), "sanitize must be idempotent for %q", raw)
	}
}

func TestSanitizeAllBoilerplateYieldsEmpty(t *testing.T) {
	assert.Equal(t, "", Sanitize("<think>only reasoning</think> #123\n\n-\n"))
}
