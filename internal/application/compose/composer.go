package compose

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/infrastructure/llm"
	"gameforge-api/pkg/logger"
)

var tracer = otel.Tracer("compose")

// StoryBundle 一次故事组装的完整结果
type StoryBundle struct {
	Title   string
	Premise string
	Act1    string
	Act2    string
	Act3    string
	Twist   string
}

// CharacterDraft 未持久化的角色草稿
type CharacterDraft struct {
	Name       string
	Class      string
	Role       string
	Background string
	Gameplay   string
}

// LocationDraft 未持久化的场景草稿
type LocationDraft struct {
	Name        string
	Description string
}

// StoryInput 故事组装入参
type StoryInput struct {
	Title      string
	Genre      entity.GameGenre
	Ambiance   entity.GameAmbiance
	Keywords   string
	References string
	// UseRandom 强制走离线模板路径
	UseRandom bool
}

// Composer 内容组装器：逐字段构造提示词并驱动文本生成。
// 各字段相互独立、顺序生成；后端不可用时整体走模板路径。
type Composer struct {
	generator    *llm.Generator
	maxNewTokens int
}

// NewComposer 创建内容组装器
func NewComposer(generator *llm.Generator, maxNewTokens int) *Composer {
	if maxNewTokens <= 0 {
		maxNewTokens = 250
	}
	return &Composer{
		generator:    generator,
		maxNewTokens: maxNewTokens,
	}
}

// ComposeStory 组装故事结构。标题用快速档，正文用均衡档，转折用高创造档。
func (c *Composer) ComposeStory(ctx context.Context, in StoryInput, provider llm.ResolvedProvider) StoryBundle {
	ctx, span := tracer.Start(ctx, "compose.ComposeStory",
		trace.WithAttributes(
			attribute.String("provider", string(provider.Kind)),
			attribute.Bool("use_random", in.UseRandom),
		))
	defer span.End()

	pctx := promptContext{
		Title:      in.Title,
		Genre:      in.Genre,
		Ambiance:   in.Ambiance,
		Keywords:   in.Keywords,
		References: in.References,
	}

	if in.UseRandom || !c.generator.Usable(ctx, provider) {
		logger.FromContext(ctx).Debug("composing story from templates",
			"use_random", in.UseRandom)
		return c.templateStory(in)
	}

	title := in.Title
	if title == "" {
		title = c.generateField(ctx, provider, pctx.titlePrompt(), llm.PatienceFast,
			templateTitle(in.UseRandom, in.Genre, in.Ambiance))
		pctx.Title = title
	}

	return StoryBundle{
		Title:   title,
		Premise: c.generateField(ctx, provider, pctx.premisePrompt(), llm.PatienceBalanced, templatePremise(in.Genre, in.Ambiance)),
		Act1:    c.generateField(ctx, provider, pctx.act1Prompt(), llm.PatienceBalanced, templateAct1()),
		Act2:    c.generateField(ctx, provider, pctx.act2Prompt(), llm.PatienceBalanced, templateAct2()),
		Act3:    c.generateField(ctx, provider, pctx.act3Prompt(), llm.PatienceBalanced, templateAct3()),
		Twist:   c.generateField(ctx, provider, pctx.twistPrompt(), llm.PatienceCreative, templateTwist()),
	}
}

// ComposeCharacters 组装角色草稿。
// 前两名固定为主角与反派；count 小于 2 时不生成额外角色，绝不为负。
func (c *Composer) ComposeCharacters(ctx context.Context, genre entity.GameGenre, count int, provider llm.ResolvedProvider) []CharacterDraft {
	ctx, span := tracer.Start(ctx, "compose.ComposeCharacters",
		trace.WithAttributes(attribute.Int("count", count)))
	defer span.End()

	useAI := c.generator.Usable(ctx, provider)
	pctx := promptContext{Genre: genre}

	characters := []CharacterDraft{
		c.composeCharacter(ctx, pctx, roleProtagonist, provider, useAI),
		c.composeCharacter(ctx, pctx, roleAntagonist, provider, useAI),
	}

	for i := 0; i < count-2; i++ {
		role := randomSupportingRole()
		characters = append(characters, c.composeCharacter(ctx, pctx, role, provider, useAI))
	}

	return characters
}

func (c *Composer) composeCharacter(ctx context.Context, pctx promptContext, role string, provider llm.ResolvedProvider, useAI bool) CharacterDraft {
	if !useAI {
		return CharacterDraft{
			Name:       templateCharacterName(),
			Class:      templateCharacterClass(),
			Role:       role,
			Background: templateBackground(role),
			Gameplay:   templateGameplay(role),
		}
	}

	nameText := c.generateField(ctx, provider, pctx.characterNamePrompt(role), llm.PatienceFast, templateCharacterName())
	name := extractName(nameText, fallbackCharacterName)

	classText := c.generateField(ctx, provider, pctx.characterClassPrompt(role), llm.PatienceFast, templateCharacterClass())
	class := extractClass(classText, fallbackCharacterClass)

	return CharacterDraft{
		Name:       name,
		Class:      class,
		Role:       role,
		Background: c.generateField(ctx, provider, pctx.characterBackgroundPrompt(role, name), llm.PatienceBalanced, templateBackground(role)),
		Gameplay:   c.generateField(ctx, provider, pctx.characterGameplayPrompt(role, name), llm.PatienceBalanced, templateGameplay(role)),
	}
}

// ComposeLocations 组装场景草稿，恰好 count 条；
// 描述提示词引用同一场景已生成的名称。
func (c *Composer) ComposeLocations(ctx context.Context, ambiance entity.GameAmbiance, count int, provider llm.ResolvedProvider) []LocationDraft {
	ctx, span := tracer.Start(ctx, "compose.ComposeLocations",
		trace.WithAttributes(attribute.Int("count", count)))
	defer span.End()

	useAI := c.generator.Usable(ctx, provider)
	pctx := promptContext{Ambiance: ambiance}

	locations := make([]LocationDraft, 0, count)
	for i := 0; i < count; i++ {
		if !useAI {
			locations = append(locations, LocationDraft{
				Name:        templateLocationName(),
				Description: templateLocationDescription(ambiance),
			})
			continue
		}

		nameText := c.generateField(ctx, provider, pctx.locationNamePrompt(), llm.PatienceFast, templateLocationName())
		name := extractName(nameText, fallbackLocationName)

		locations = append(locations, LocationDraft{
			Name:        name,
			Description: c.generateField(ctx, provider, pctx.locationDescriptionPrompt(name), llm.PatienceBalanced, templateLocationDescription(ambiance)),
		})
	}

	return locations
}

// generateField 生成单个字段。
// 传输错误按旧行为渲染为内联标记内容，其余降级回落到模板文本。
func (c *Composer) generateField(ctx context.Context, provider llm.ResolvedProvider, prompt string, patience int, fallback string) string {
	result := c.generator.Generate(ctx, llm.GenerationRequest{
		Prompt:       prompt,
		MaxNewTokens: c.maxNewTokens,
		Patience:     patience,
	}, provider)

	if !result.Degraded {
		return result.Text
	}
	if result.Reason == llm.ReasonProviderError {
		return result.Annotated()
	}
	return fallback
}

// templateStory 离线模板故事
func (c *Composer) templateStory(in StoryInput) StoryBundle {
	title := in.Title
	if title == "" {
		title = templateTitle(in.UseRandom, in.Genre, in.Ambiance)
	}
	return StoryBundle{
		Title:   title,
		Premise: templatePremise(in.Genre, in.Ambiance),
		Act1:    templateAct1(),
		Act2:    templateAct2(),
		Act3:    templateAct3(),
		Twist:   templateTwist(),
	}
}
