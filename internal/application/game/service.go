// Package game 提供游戏设计文档的创建、浏览与内容生成
package game

import (
	"context"

	"go.opentelemetry.io/otel"

	"gameforge-api/internal/application/compose"
	"gameforge-api/internal/application/settings"
	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/domain/repository"
	"gameforge-api/internal/infrastructure/embedding"
	"gameforge-api/internal/infrastructure/imagegen"
	"gameforge-api/internal/infrastructure/persistence/redis"
	"gameforge-api/pkg/errors"
	"gameforge-api/pkg/logger"
)

var tracer = otel.Tracer("game")

// Service 游戏服务
type Service struct {
	games      repository.GameRepository
	characters repository.CharacterRepository
	locations  repository.LocationRepository
	images     repository.GameImageRepository
	favorites  repository.FavoriteRepository
	tx         repository.Transactor

	settings *settings.Service
	composer *compose.Composer
	imagegen *imagegen.Adapter
	cache    *redis.Cache

	// 相似游戏检索为尽力而为：embedder 或 vectors 缺失时整体跳过
	embedder *embedding.Client
	vectors  repository.GameVectorRepository
}

// NewService 创建游戏服务
func NewService(
	games repository.GameRepository,
	characters repository.CharacterRepository,
	locations repository.LocationRepository,
	images repository.GameImageRepository,
	favorites repository.FavoriteRepository,
	tx repository.Transactor,
	settingsSvc *settings.Service,
	composer *compose.Composer,
	imageAdapter *imagegen.Adapter,
	cache *redis.Cache,
	embedder *embedding.Client,
	vectors repository.GameVectorRepository,
) *Service {
	return &Service{
		games:      games,
		characters: characters,
		locations:  locations,
		images:     images,
		favorites:  favorites,
		tx:         tx,
		settings:   settingsSvc,
		composer:   composer,
		imagegen:   imageAdapter,
		cache:      cache,
		embedder:   embedder,
		vectors:    vectors,
	}
}

// GetGame 获取游戏，私有游戏仅创建者可见
func (s *Service) GetGame(ctx context.Context, userID, gameID string) (*entity.Game, error) {
	ctx, span := tracer.Start(ctx, "game.GetGame")
	defer span.End()

	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load game")
	}
	if game == nil {
		return nil, errors.ErrGameNotFound
	}
	if !game.VisibleTo(userID) {
		return nil, errors.ErrGameNotFound
	}
	return game, nil
}

// getOwnedGame 获取游戏并校验所有权
func (s *Service) getOwnedGame(ctx context.Context, userID, gameID string) (*entity.Game, error) {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load game")
	}
	if game == nil {
		return nil, errors.ErrGameNotFound
	}
	if !game.OwnedBy(userID) {
		return nil, errors.ErrForbidden
	}
	return game, nil
}

// ListPublicGames 按创建时间倒序列出公开游戏
func (s *Service) ListPublicGames(ctx context.Context, genre entity.GameGenre, ambiance entity.GameAmbiance, pagination repository.Pagination) (*repository.PagedResult[*entity.Game], error) {
	ctx, span := tracer.Start(ctx, "game.ListPublicGames")
	defer span.End()

	filter := &repository.GameFilter{PublicOnly: true, Genre: genre, Ambiance: ambiance}
	result, err := s.games.List(ctx, filter, pagination)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to list games")
	}
	return result, nil
}

// ListMyGames 列出当前用户创建的游戏
func (s *Service) ListMyGames(ctx context.Context, userID string, pagination repository.Pagination) (*repository.PagedResult[*entity.Game], error) {
	ctx, span := tracer.Start(ctx, "game.ListMyGames")
	defer span.End()

	result, err := s.games.ListByCreator(ctx, userID, pagination)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to list games")
	}
	return result, nil
}

// GameUpdate 游戏更新入参；nil 字段保持不变
type GameUpdate struct {
	Title      *string
	Keywords   *string
	References *string
	IsPublic   *bool

	StoryPremise *string
	StoryAct1    *string
	StoryAct2    *string
	StoryAct3    *string
	StoryTwist   *string
}

// UpdateGame 更新游戏（仅创建者）。前提或可见性变更时同步向量索引。
func (s *Service) UpdateGame(ctx context.Context, userID, gameID string, update GameUpdate) (*entity.Game, error) {
	ctx, span := tracer.Start(ctx, "game.UpdateGame")
	defer span.End()

	game, err := s.getOwnedGame(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}

	reindex := false
	if update.Title != nil {
		game.Title = *update.Title
	}
	if update.Keywords != nil {
		game.Keywords = *update.Keywords
	}
	if update.References != nil {
		game.References = *update.References
	}
	if update.IsPublic != nil && *update.IsPublic != game.IsPublic {
		game.IsPublic = *update.IsPublic
		reindex = true
	}
	if update.StoryPremise != nil && *update.StoryPremise != game.StoryPremise {
		game.StoryPremise = *update.StoryPremise
		reindex = true
	}
	if update.StoryAct1 != nil {
		game.StoryAct1 = *update.StoryAct1
	}
	if update.StoryAct2 != nil {
		game.StoryAct2 = *update.StoryAct2
	}
	if update.StoryAct3 != nil {
		game.StoryAct3 = *update.StoryAct3
	}
	if update.StoryTwist != nil {
		game.StoryTwist = *update.StoryTwist
	}

	if err := s.games.Update(ctx, game); err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to update game")
	}

	if err := s.cache.InvalidateGame(ctx, game.ID); err != nil {
		logger.FromContext(ctx).Warn("failed to invalidate game cache", "error", err)
	}
	if reindex {
		s.indexGame(ctx, game)
	}
	return game, nil
}

// DeleteGame 删除游戏及其关联内容（仅创建者）
func (s *Service) DeleteGame(ctx context.Context, userID, gameID string) error {
	ctx, span := tracer.Start(ctx, "game.DeleteGame")
	defer span.End()

	if _, err := s.getOwnedGame(ctx, userID, gameID); err != nil {
		return err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.games.Delete(ctx, gameID)
	})
	if err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to delete game")
	}

	if err := s.cache.InvalidateGame(ctx, gameID); err != nil {
		logger.FromContext(ctx).Warn("failed to invalidate game cache", "error", err)
	}
	s.unindexGame(ctx, gameID)

	logger.FromContext(ctx).Info("game deleted", "game_id", gameID)
	return nil
}
