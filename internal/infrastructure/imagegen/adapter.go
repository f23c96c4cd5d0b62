// Package imagegen 提供文生图适配层
package imagegen

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/infrastructure/storage"
	"gameforge-api/pkg/logger"
	"gameforge-api/pkg/metrics"
)

var tracer = otel.Tracer("imagegen")

// DefaultPlaceholderPath 占位图兜底路径（渲染或写盘失败时返回）
const DefaultPlaceholderPath = "game_images/placeholder.png"

const (
	placeholderCaption = "This is a placeholder image. In a real implementation, this would be generated by an AI model."
	disabledCaption    = "Image generation is disabled for this account."
)

// 按类别增强提示词的模板
var promptTemplates = map[entity.ImageType]string{
	entity.ImageTypeCharacter: "character portrait of %s, detailed, high quality digital art",
	entity.ImageTypeLocation:  "fantasy landscape of %s, scenic, atmospheric, high quality digital art",
	entity.ImageTypeConcept:   "concept illustration of %s, digital art, detailed",
}

// ImageOptions 单次出图的用户侧选项
type ImageOptions struct {
	// Token 托管推理令牌；为空走占位图
	Token string
	// GenerateImages 用户是否允许出图；关闭时直接返回禁用占位图
	GenerateImages bool
}

// Adapter 图片生成适配器。出图失败永不向上传播，
// 任何失败路径都以本地占位图收尾。
type Adapter struct {
	client   *TextToImageClient
	sink     storage.MediaSink
	imageDir string
}

// NewAdapter 创建图片生成适配器
func NewAdapter(client *TextToImageClient, sink storage.MediaSink, imageDir string) *Adapter {
	if imageDir == "" {
		imageDir = "game_images"
	}
	return &Adapter{
		client:   client,
		sink:     sink,
		imageDir: imageDir,
	}
}

// GenerateImage 生成一张图片并返回相对存储路径
func (a *Adapter) GenerateImage(ctx context.Context, prompt string, imageType entity.ImageType, filename string, opts ImageOptions) string {
	ctx, span := tracer.Start(ctx, "imagegen.GenerateImage",
		trace.WithAttributes(attribute.String("image_type", string(imageType))))
	defer span.End()

	log := logger.FromContext(ctx)

	if !opts.GenerateImages {
		metrics.ImagePlaceholderTotal.WithLabelValues(string(imageType), "disabled").Inc()
		return a.renderPlaceholder(ctx, prompt, imageType, filename, disabledCaption)
	}

	if opts.Token == "" || a.client == nil {
		metrics.ImagePlaceholderTotal.WithLabelValues(string(imageType), "no_token").Inc()
		return a.renderPlaceholder(ctx, prompt, imageType, filename, placeholderCaption)
	}

	start := time.Now()
	data, err := a.client.Generate(ctx, opts.Token, enhancePrompt(prompt, imageType))
	if err != nil {
		span.RecordError(err)
		log.Warn("image generation failed, falling back to placeholder",
			"image_type", imageType, "error", err)
		metrics.ImageGenerationTotal.WithLabelValues(string(imageType), "error").Inc()
		metrics.ImagePlaceholderTotal.WithLabelValues(string(imageType), "provider_error").Inc()
		return a.renderPlaceholder(ctx, prompt, imageType, filename, placeholderCaption)
	}

	path, err := a.sink.Save(ctx, a.imageDir+"/"+filename, data)
	if err != nil {
		span.RecordError(err)
		log.Warn("failed to store generated image", "error", err)
		metrics.ImageGenerationTotal.WithLabelValues(string(imageType), "error").Inc()
		return a.renderPlaceholder(ctx, prompt, imageType, filename, placeholderCaption)
	}

	log.Info("image generated", "image_type", imageType, "path", path,
		"elapsed", time.Since(start))
	metrics.ImageGenerationTotal.WithLabelValues(string(imageType), "success").Inc()
	return path
}

// renderPlaceholder 渲染并保存占位图；任何内部失败都返回固定兜底路径
func (a *Adapter) renderPlaceholder(ctx context.Context, prompt string, imageType entity.ImageType, filename, caption string) string {
	data, err := RenderPlaceholder(imageType, prompt, caption)
	if err != nil {
		logger.FromContext(ctx).Error("failed to render placeholder image", "error", err)
		return DefaultPlaceholderPath
	}

	path, err := a.sink.Save(ctx, a.imageDir+"/"+filename, data)
	if err != nil {
		logger.FromContext(ctx).Error("failed to store placeholder image", "error", err)
		return DefaultPlaceholderPath
	}
	return path
}

func enhancePrompt(prompt string, imageType entity.ImageType) string {
	tpl, ok := promptTemplates[imageType]
	if !ok {
		return prompt
	}
	return fmt.Sprintf(tpl, prompt)
}
