package game

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 200))
	assert.Equal(t, "", truncateRunes("", 200))
	assert.Equal(t, "abc", truncateRunes("abcdef", 3))

	// 截断点落在多字节字符上时保持合法 UTF-8
	premise := strings.Repeat("é", 199) + "世界"
	got := truncateRunes(premise, 200)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 200, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "世"))
}
