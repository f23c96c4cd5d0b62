package compose

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/infrastructure/llm"
)

// offlineComposer 构造一个后端不可用的组装器，所有内容走模板路径
func offlineComposer() *Composer {
	completion := llm.NewCompletionClient(time.Second)
	pool := llm.NewProviderHandlePool(nil, completion.Health)
	generator := llm.NewGenerator(completion, nil, pool, "")
	return NewComposer(generator, 250)
}

var offlineProvider = llm.ResolvedProvider{Kind: llm.KindLocal}

func TestComposeStoryRandomUsesTitleTable(t *testing.T) {
	c := offlineComposer()
	bundle := c.ComposeStory(context.Background(), StoryInput{
		Genre:     entity.GenreRPG,
		Ambiance:  entity.AmbianceFantasy,
		UseRandom: true,
	}, offlineProvider)

	assert.Contains(t, gameTitles, bundle.Title)
	assert.NotEmpty(t, bundle.Premise)
	assert.NotEmpty(t, bundle.Act1)
	assert.NotEmpty(t, bundle.Act2)
	assert.NotEmpty(t, bundle.Act3)
	assert.NotEmpty(t, bundle.Twist)
}

func TestComposeStoryOfflineFallbackTitle(t *testing.T) {
	c := offlineComposer()
	bundle := c.ComposeStory(context.Background(), StoryInput{
		Genre:    entity.GenreRPG,
		Ambiance: entity.AmbianceDarkFantasy,
	}, offlineProvider)

	assert.Equal(t, "Dark Fantasy Rpg", bundle.Title)
	assert.Contains(t, bundle.Premise, "dark fantasy")
	assert.Contains(t, bundle.Premise, "rpg")
}

func TestComposeStoryKeepsProvidedTitle(t *testing.T) {
	c := offlineComposer()
	bundle := c.ComposeStory(context.Background(), StoryInput{
		Title:    "Ashes of the Spire",
		Genre:    entity.GenreAdventure,
		Ambiance: entity.AmbianceHorror,
	}, offlineProvider)

	assert.Equal(t, "Ashes of the Spire", bundle.Title)
}

func TestComposeCharactersLeadRoles(t *testing.T) {
	c := offlineComposer()
	ctx := context.Background()

	for _, count := range []int{0, 1, 2} {
		drafts := c.ComposeCharacters(ctx, entity.GenreRPG, count, offlineProvider)
		require.Len(t, drafts, 2, "count=%d always yields the two lead roles", count)
		assert.Equal(t, "Protagonist", drafts[0].Role)
		assert.Equal(t, "Antagonist", drafts[1].Role)
	}
}

func TestComposeCharactersSupportingRoles(t *testing.T) {
	c := offlineComposer()
	drafts := c.ComposeCharacters(context.Background(), entity.GenreRPG, 5, offlineProvider)

	require.Len(t, drafts, 5)
	assert.Equal(t, "Protagonist", drafts[0].Role)
	assert.Equal(t, "Antagonist", drafts[1].Role)
	for _, d := range drafts[2:] {
		assert.NotEqual(t, "Protagonist", d.Role)
		assert.NotEqual(t, "Antagonist", d.Role)
		assert.Contains(t, characterRoles, d.Role)
	}
	for _, d := range drafts {
		assert.Contains(t, characterNames, d.Name)
		assert.Contains(t, characterClasses, d.Class)
		assert.NotEmpty(t, d.Background)
		assert.NotEmpty(t, d.Gameplay)
	}
}

func TestComposeLocationsExactCount(t *testing.T) {
	c := offlineComposer()
	ctx := context.Background()

	for _, count := range []int{0, 1, 4} {
		drafts := c.ComposeLocations(ctx, entity.AmbianceSciFi, count, offlineProvider)
		require.Len(t, drafts, count)
		for _, d := range drafts {
			assert.Contains(t, locationNames, d.Name)
			assert.Contains(t, d.Description, "sci fi")
		}
	}
}

func TestComposeStoryProviderErrorAnnotatesFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	completion := llm.NewCompletionClient(time.Second)
	pool := llm.NewProviderHandlePool(nil, completion.Health)
	c := NewComposer(llm.NewGenerator(completion, nil, pool, ""), 250)

	bundle := c.ComposeStory(context.Background(), StoryInput{
		Title:    "Ironveil",
		Genre:    entity.GenreStrategy,
		Ambiance: entity.AmbianceSteampunk,
	}, llm.ResolvedProvider{Kind: llm.KindLMStudio, EndpointURL: srv.URL})

	assert.Equal(t, "Ironveil", bundle.Title)
	for field, text := range map[string]string{
		"premise": bundle.Premise,
		"act1":    bundle.Act1,
		"twist":   bundle.Twist,
	} {
		assert.Contains(t, text, "[generation error: ", field)
		assert.True(t, strings.HasPrefix(text, "You are writing content"), "%s keeps the prompt as degraded content", field)
	}
}
