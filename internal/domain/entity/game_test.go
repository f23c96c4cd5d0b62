package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameVisibleTo(t *testing.T) {
	public := NewGame("creator-1", "Echoes", GenreRPG, AmbianceFantasy)
	assert.True(t, public.VisibleTo("creator-1"))
	assert.True(t, public.VisibleTo("someone-else"))
	assert.True(t, public.VisibleTo(""), "public games are visible to anonymous users")

	private := NewGame("creator-1", "Hidden", GenreRPG, AmbianceFantasy)
	private.IsPublic = false
	assert.True(t, private.VisibleTo("creator-1"))
	assert.False(t, private.VisibleTo("someone-else"))
	assert.False(t, private.VisibleTo(""))
}

func TestGameOwnedBy(t *testing.T) {
	g := NewGame("creator-1", "Echoes", GenreRPG, AmbianceFantasy)
	assert.True(t, g.OwnedBy("creator-1"))
	assert.False(t, g.OwnedBy("someone-else"))
}

func TestNewGameDefaultsPublic(t *testing.T) {
	g := NewGame("creator-1", "Echoes", GenreRPG, AmbianceFantasy)
	assert.True(t, g.IsPublic)
}

func TestIsValidGenre(t *testing.T) {
	for _, g := range ValidGenres() {
		assert.True(t, IsValidGenre(g))
	}
	assert.False(t, IsValidGenre(GameGenre("MOBA")))
	assert.False(t, IsValidGenre(GameGenre("rpg")), "validation is case sensitive")
}

func TestIsValidAmbiance(t *testing.T) {
	for _, a := range ValidAmbiances() {
		assert.True(t, IsValidAmbiance(a))
	}
	assert.False(t, IsValidAmbiance(GameAmbiance("WESTERN")))
}

func TestIsValidAIService(t *testing.T) {
	for _, s := range []AIService{AIServiceLocal, AIServiceHuggingFace, AIServiceLMStudio, AIServiceChatGPT} {
		assert.True(t, IsValidAIService(s))
	}
	assert.False(t, IsValidAIService(AIService("REMOTE_DEFAULT")), "remote default is admin controlled, not user selectable")
	assert.False(t, IsValidAIService(AIService("")))
}

func TestUserPassword(t *testing.T) {
	u := NewUser("dev@gameforge.local", "Dev")
	assert.NoError(t, u.SetPassword("s3cret-pass"))
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
	assert.True(t, u.CheckPassword("s3cret-pass"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.False(t, u.CheckPassword(""))
}
