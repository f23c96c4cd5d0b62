package imagegen

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge-api/internal/domain/entity"
)

// fakeSink 记录写入的媒体文件，可注入失败
type fakeSink struct {
	saved map[string][]byte
	err   error
}

func newFakeSink() *fakeSink {
	return &fakeSink{saved: make(map[string][]byte)}
}

func (f *fakeSink) Save(ctx context.Context, relativeSubpath string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved[relativeSubpath] = data
	return relativeSubpath, nil
}

func TestGenerateImageDisabledRendersPlaceholder(t *testing.T) {
	sink := newFakeSink()
	adapter := NewAdapter(nil, sink, "game_images")

	path := adapter.GenerateImage(context.Background(), "a ruined tower", entity.ImageTypeLocation,
		"tower.png", ImageOptions{GenerateImages: false})

	assert.Equal(t, "game_images/tower.png", path)
	data, ok := sink.saved["game_images/tower.png"]
	require.True(t, ok)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestGenerateImageWithoutTokenRendersPlaceholder(t *testing.T) {
	sink := newFakeSink()
	adapter := NewAdapter(nil, sink, "game_images")

	path := adapter.GenerateImage(context.Background(), "the antagonist", entity.ImageTypeCharacter,
		"villain.png", ImageOptions{GenerateImages: true})

	assert.Equal(t, "game_images/villain.png", path)
	assert.Contains(t, sink.saved, "game_images/villain.png")
}

func TestGenerateImageSinkFailureFallsBackToDefaultPath(t *testing.T) {
	sink := newFakeSink()
	sink.err = fmt.Errorf("disk full")
	adapter := NewAdapter(nil, sink, "game_images")

	path := adapter.GenerateImage(context.Background(), "a portal", entity.ImageTypeConcept,
		"portal.png", ImageOptions{GenerateImages: true})

	assert.Equal(t, DefaultPlaceholderPath, path)
}

func TestGenerateImageDefaultDir(t *testing.T) {
	sink := newFakeSink()
	adapter := NewAdapter(nil, sink, "")

	path := adapter.GenerateImage(context.Background(), "x", entity.ImageTypeConcept,
		"concept.png", ImageOptions{})

	assert.Equal(t, "game_images/concept.png", path)
}

func TestEnhancePrompt(t *testing.T) {
	assert.Equal(t,
		"character portrait of a grim ranger, detailed, high quality digital art",
		enhancePrompt("a grim ranger", entity.ImageTypeCharacter))
	assert.Equal(t,
		"fantasy landscape of a sunken temple, scenic, atmospheric, high quality digital art",
		enhancePrompt("a sunken temple", entity.ImageTypeLocation))
	assert.Equal(t,
		"concept illustration of a clockwork heart, digital art, detailed",
		enhancePrompt("a clockwork heart", entity.ImageTypeConcept))
	assert.Equal(t, "unchanged", enhancePrompt("unchanged", entity.ImageType("BANNER")))
}
