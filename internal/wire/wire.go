//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"gameforge-api/internal/application/auth"
	"gameforge-api/internal/application/game"
	"gameforge-api/internal/application/settings"
	"gameforge-api/internal/config"
	"gameforge-api/internal/domain/repository"
	"gameforge-api/internal/infrastructure/embedding"
	"gameforge-api/internal/infrastructure/persistence/postgres"
	"gameforge-api/internal/infrastructure/persistence/redis"
	"gameforge-api/internal/infrastructure/storage"
	"gameforge-api/internal/interfaces/http/handler"
	"gameforge-api/internal/interfaces/http/router"
)

// infrastructureSet 基础设施依赖
var infrastructureSet = wire.NewSet(
	ProvidePostgresClient,
	ProvideRedisClient,
	redis.NewCache,
	ProvideMilvusClient,
	ProvideVectorRepository,
	ProvideCompletionClient,
	ProvideHuggingFaceClient,
	ProvideProviderPool,
	ProvideGenerator,
	ProvideMediaStore,
	ProvideImageAdapter,
	ProvideJWTManager,
	ProvideRateLimit,
	wire.Bind(new(storage.MediaSink), new(*storage.LocalMediaStore)),
	wire.Bind(new(settings.Cache), new(*redis.Cache)),
)

// persistenceSet 仓储依赖
var persistenceSet = wire.NewSet(
	postgres.NewUserRepository,
	postgres.NewGameRepository,
	postgres.NewCharacterRepository,
	postgres.NewLocationRepository,
	postgres.NewGameImageRepository,
	postgres.NewFavoriteRepository,
	postgres.NewSettingsRepository,
	postgres.NewTxManager,
	wire.Bind(new(repository.UserRepository), new(*postgres.UserRepository)),
	wire.Bind(new(repository.GameRepository), new(*postgres.GameRepository)),
	wire.Bind(new(repository.CharacterRepository), new(*postgres.CharacterRepository)),
	wire.Bind(new(repository.LocationRepository), new(*postgres.LocationRepository)),
	wire.Bind(new(repository.GameImageRepository), new(*postgres.GameImageRepository)),
	wire.Bind(new(repository.FavoriteRepository), new(*postgres.FavoriteRepository)),
	wire.Bind(new(repository.SettingsRepository), new(*postgres.SettingsRepository)),
	wire.Bind(new(repository.Transactor), new(*postgres.TxManager)),
)

// applicationSet 应用服务依赖
var applicationSet = wire.NewSet(
	ProvideLLMConfig,
	ProvideJWTConfig,
	ProvideEmbeddingConfig,
	ProvideComposer,
	embedding.NewClient,
	settings.NewService,
	auth.NewService,
	game.NewService,
)

// interfaceSet HTTP 接口依赖
var interfaceSet = wire.NewSet(
	handler.NewHealthHandler,
	handler.NewAuthHandler,
	handler.NewGameHandler,
	handler.NewContentHandler,
	handler.NewSettingsHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 初始化应用
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		infrastructureSet,
		persistenceSet,
		applicationSet,
		interfaceSet,
	)
	return nil, nil, nil
}
