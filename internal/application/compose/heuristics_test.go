package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"first capitalized word", "the brave Kaelen rides north", "Kaelen"},
		{"skips short capitalized words", "Al of Rivenhold", "Rivenhold"},
		{"trims punctuation", "Kaelen, the wanderer", "Kaelen"},
		{"skips lowercase words", "a name could be Mira", "Mira"},
		{"no candidate falls back", "just lowercase words here... wait, all lowercase", "Aria"},
		{"empty falls back", "", "Aria"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractName(tc.text, "Aria"))
		})
	}
}

func TestExtractClass(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"first long word", "a fierce Paladin of the order", "fierce"},
		{"skips short words", "an orc brute", "brute"},
		{"skips french stop words", "dans cette aventure Paladin", "aventure"},
		{"stop word check is case insensitive", "Avec Votre Necromancer", "Necromancer"},
		{"trims punctuation", "\"Ranger.\"", "Ranger"},
		{"no candidate falls back", "un si bon mot", "Warrior"},
		{"empty falls back", "", "Warrior"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractClass(tc.text, "Warrior"))
		})
	}
}

func TestTitleizeAndHumanize(t *testing.T) {
	assert.Equal(t, "post apocalyptic", humanize("POST_APOCALYPTIC"))
	assert.Equal(t, "Post Apocalyptic", titleize("POST_APOCALYPTIC"))
	assert.Equal(t, "Rpg", titleize("RPG"))
}
