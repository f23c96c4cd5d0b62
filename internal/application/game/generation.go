package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gameforge-api/internal/application/compose"
	"gameforge-api/internal/application/settings"
	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/domain/repository"
	"gameforge-api/internal/infrastructure/imagegen"
	"gameforge-api/pkg/errors"
	"gameforge-api/pkg/logger"
	"gameforge-api/pkg/metrics"
)

// 创建游戏时的默认角色/场景数量
const (
	defaultCharacterCount = 2
	defaultLocationCount  = 2
)

// CreateGameInput 创建游戏入参
type CreateGameInput struct {
	Title      string
	Genre      entity.GameGenre
	Ambiance   entity.GameAmbiance
	Keywords   string
	References string
	IsPublic   bool

	CharacterCount int
	LocationCount  int

	// UseRandom 强制离线模板内容
	UseRandom bool
}

// CreateGame 创建游戏：解析一次设置，逐字段组装内容并持久化，
// 随后生成配图与向量索引（两者均为尽力而为）
func (s *Service) CreateGame(ctx context.Context, userID string, in CreateGameInput) (*entity.Game, error) {
	ctx, span := tracer.Start(ctx, "game.CreateGame",
		trace.WithAttributes(attribute.Bool("use_random", in.UseRandom)))
	defer span.End()

	if !entity.IsValidGenre(in.Genre) {
		return nil, errors.ErrInvalidParam.WithDetail(fmt.Sprintf("invalid genre %q", in.Genre))
	}
	if !entity.IsValidAmbiance(in.Ambiance) {
		return nil, errors.ErrInvalidParam.WithDetail(fmt.Sprintf("invalid ambiance %q", in.Ambiance))
	}

	characterCount := in.CharacterCount
	if characterCount <= 0 {
		characterCount = defaultCharacterCount
	}
	locationCount := in.LocationCount
	if locationCount < 0 {
		locationCount = defaultLocationCount
	}

	// 每次生成请求重新解析一次后端配置
	res := s.settings.Resolve(ctx, userID)
	provider := res.Provider

	bundle := s.composer.ComposeStory(ctx, compose.StoryInput{
		Title:      in.Title,
		Genre:      in.Genre,
		Ambiance:   in.Ambiance,
		Keywords:   in.Keywords,
		References: in.References,
		UseRandom:  in.UseRandom,
	}, provider)

	characterDrafts := s.composer.ComposeCharacters(ctx, in.Genre, characterCount, provider)
	locationDrafts := s.composer.ComposeLocations(ctx, in.Ambiance, locationCount, provider)

	game := entity.NewGame(userID, bundle.Title, in.Genre, in.Ambiance)
	game.Keywords = in.Keywords
	game.References = in.References
	game.IsPublic = in.IsPublic
	game.StoryPremise = bundle.Premise
	game.StoryAct1 = bundle.Act1
	game.StoryAct2 = bundle.Act2
	game.StoryAct3 = bundle.Act3
	game.StoryTwist = bundle.Twist

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.games.Create(ctx, game); err != nil {
			return err
		}

		characters := make([]*entity.Character, 0, len(characterDrafts))
		for _, draft := range characterDrafts {
			characters = append(characters, &entity.Character{
				GameID:     game.ID,
				Name:       draft.Name,
				Class:      draft.Class,
				Role:       draft.Role,
				Background: draft.Background,
				Gameplay:   draft.Gameplay,
			})
		}
		if err := s.characters.CreateBatch(ctx, characters); err != nil {
			return err
		}

		locations := make([]*entity.Location, 0, len(locationDrafts))
		for _, draft := range locationDrafts {
			locations = append(locations, &entity.Location{
				GameID:      game.ID,
				Name:        draft.Name,
				Description: draft.Description,
			})
		}
		return s.locations.CreateBatch(ctx, locations)
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to persist game")
	}

	s.generateInitialImages(ctx, game, characterDrafts, res)
	s.indexGame(ctx, game)

	mode := "standard"
	if in.UseRandom {
		mode = "random"
	}
	metrics.GamesCreatedTotal.WithLabelValues(mode).Inc()
	logger.FromContext(ctx).Info("game created",
		"game_id", game.ID, "title", game.Title, "mode", mode)
	return game, nil
}

// CreateRandomGame 一键生成随机游戏：固定参数，强制模板路径
func (s *Service) CreateRandomGame(ctx context.Context, userID string) (*entity.Game, error) {
	return s.CreateGame(ctx, userID, CreateGameInput{
		Genre:     entity.GenreAdventure,
		Ambiance:  entity.AmbianceFantasy,
		Keywords:  "random, generated",
		IsPublic:  true,
		UseRandom: true,
	})
}

// generateInitialImages 为新游戏生成一张角色图与一张概念图。
// 出图失败不影响创建，占位图同样入库。
func (s *Service) generateInitialImages(ctx context.Context, game *entity.Game, characters []compose.CharacterDraft, res settings.Resolution) {
	opts := imageOptions(res)

	if len(characters) > 0 {
		protagonist := characters[0]
		prompt := fmt.Sprintf("%s, a %s %s", protagonist.Name, protagonist.Class, protagonist.Role)
		s.storeImage(ctx, game.ID, entity.ImageTypeCharacter, prompt, opts)
	}

	conceptPrompt := truncateRunes(game.StoryPremise, maxConceptPromptRunes)
	s.storeImage(ctx, game.ID, entity.ImageTypeConcept, conceptPrompt, opts)
}

// 概念图提示词的最大长度（按字符计）
const maxConceptPromptRunes = 200

// truncateRunes 按字符截断，避免在多字节序列中间切开
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// GenerateImage 为既有游戏追加生成一张图片（仅创建者）
func (s *Service) GenerateImage(ctx context.Context, userID, gameID, prompt string, imageType entity.ImageType) (*entity.GameImage, error) {
	ctx, span := tracer.Start(ctx, "game.GenerateImage",
		trace.WithAttributes(attribute.String("image_type", string(imageType))))
	defer span.End()

	if !entity.IsValidImageType(imageType) {
		return nil, errors.ErrInvalidParam.WithDetail(fmt.Sprintf("invalid image type %q", imageType))
	}
	if _, err := s.getOwnedGame(ctx, userID, gameID); err != nil {
		return nil, err
	}

	res := s.settings.Resolve(ctx, userID)
	image := s.storeImage(ctx, gameID, imageType, prompt, imageOptions(res))
	if image == nil {
		return nil, errors.ErrImageGenFailed
	}
	return image, nil
}

// storeImage 生成一张图片并写入图片记录；记录写入失败时仅告警
func (s *Service) storeImage(ctx context.Context, gameID string, imageType entity.ImageType, prompt string, opts imagegen.ImageOptions) *entity.GameImage {
	filename := uuid.NewString() + ".png"
	path := s.imagegen.GenerateImage(ctx, prompt, imageType, filename, opts)

	image := &entity.GameImage{
		GameID:    gameID,
		ImageType: imageType,
		Path:      path,
		Prompt:    prompt,
	}
	if err := s.images.Create(ctx, image); err != nil {
		logger.FromContext(ctx).Warn("failed to persist game image", "error", err)
		return nil
	}
	return image
}

// indexGame 将游戏前提向量化并写入向量库，失败静默降级
func (s *Service) indexGame(ctx context.Context, game *entity.Game) {
	if s.embedder == nil || s.vectors == nil || game.StoryPremise == "" {
		return
	}

	vector, err := s.embedder.EmbedOne(ctx, game.StoryPremise)
	if err != nil {
		logger.FromContext(ctx).Warn("failed to embed game premise", "error", err)
		return
	}

	if err := s.vectors.Upsert(ctx, &repository.GameVector{
		GameID:   game.ID,
		IsPublic: game.IsPublic,
		Vector:   vector,
	}); err != nil {
		logger.FromContext(ctx).Warn("failed to index game vector", "error", err)
	}
}

// imageOptions 将设置解析结果转为出图选项
func imageOptions(res settings.Resolution) imagegen.ImageOptions {
	return imagegen.ImageOptions{
		Token:          res.ImageToken,
		GenerateImages: res.GenerateImages,
	}
}

// unindexGame 删除游戏向量，失败静默降级
func (s *Service) unindexGame(ctx context.Context, gameID string) {
	if s.vectors == nil {
		return
	}
	if err := s.vectors.Delete(ctx, gameID); err != nil {
		logger.FromContext(ctx).Warn("failed to delete game vector", "error", err)
	}
}
