package imagegen

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge-api/internal/domain/entity"
)

func TestRenderPlaceholderDimensions(t *testing.T) {
	data, err := RenderPlaceholder(entity.ImageTypeCharacter, "a grizzled knight", "placeholder caption")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 800, bounds.Dx())
	assert.Equal(t, 600, bounds.Dy())
}

func TestRenderPlaceholderColorByType(t *testing.T) {
	cases := []struct {
		imageType entity.ImageType
		want      color.RGBA
	}{
		{entity.ImageTypeCharacter, color.RGBA{R: 100, G: 100, B: 200, A: 255}},
		{entity.ImageTypeLocation, color.RGBA{R: 100, G: 200, B: 100, A: 255}},
		{entity.ImageTypeConcept, color.RGBA{R: 200, G: 100, B: 100, A: 255}},
	}
	for _, tc := range cases {
		t.Run(string(tc.imageType), func(t *testing.T) {
			data, err := RenderPlaceholder(tc.imageType, "prompt", "caption")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)

			// 取未绘制文字的角落像素验证底色
			r, g, b, a := img.At(799, 0).RGBA()
			got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRenderPlaceholderHandlesEmptyText(t *testing.T) {
	data, err := RenderPlaceholder(entity.ImageTypeConcept, "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
