// Package imagegen 提供文生图适配层
package imagegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"gameforge-api/internal/domain/entity"
)

// 占位图画布尺寸与排版参数
const (
	placeholderWidth  = 800
	placeholderHeight = 600
	textMarginX       = 50
	textMaxWidth      = 700
	lineHeight        = 30
)

// placeholderColor 按图片类型返回底色
func placeholderColor(imageType entity.ImageType) color.RGBA {
	switch imageType {
	case entity.ImageTypeCharacter:
		return color.RGBA{R: 100, G: 100, B: 200, A: 255}
	case entity.ImageTypeLocation:
		return color.RGBA{R: 100, G: 200, B: 100, A: 255}
	default:
		return color.RGBA{R: 200, G: 100, B: 100, A: 255}
	}
}

// RenderPlaceholder 渲染纯色占位图：类型底色、换行排版的提示词与说明文字。
// 返回 PNG 编码字节。
func RenderPlaceholder(imageType entity.ImageType, prompt, caption string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderColor(imageType)), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}

	drawLine := func(x, y int, text string) {
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(text)
	}

	drawLine(textMarginX, 50, fmt.Sprintf("Image Type: %s", imageType))

	y := 100
	for _, line := range wrapText(drawer, prompt, textMaxWidth) {
		drawLine(textMarginX, y, line)
		y += lineHeight
	}

	y = placeholderHeight - 100
	for _, line := range wrapText(drawer, caption, textMaxWidth) {
		drawLine(textMarginX, y, line)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder image: %w", err)
	}
	return buf.Bytes(), nil
}

// wrapText 按像素宽度对文本做单词级换行
func wrapText(drawer *font.Drawer, text string, maxWidth int) []string {
	var lines []string
	var current string

	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if drawer.MeasureString(candidate).Ceil() <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
