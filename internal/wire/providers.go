// Package wire 提供依赖注入配置
package wire

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"gameforge-api/internal/application/compose"
	"gameforge-api/internal/config"
	"gameforge-api/internal/domain/repository"
	"gameforge-api/internal/infrastructure/imagegen"
	"gameforge-api/internal/infrastructure/llm"
	"gameforge-api/internal/infrastructure/persistence/milvus"
	"gameforge-api/internal/infrastructure/persistence/postgres"
	"gameforge-api/internal/infrastructure/persistence/redis"
	"gameforge-api/internal/infrastructure/storage"
	"gameforge-api/internal/interfaces/http/middleware"
	"gameforge-api/pkg/logger"
	"gameforge-api/pkg/utils"
)

const defaultLLMTimeout = 30 * time.Second

// ProvidePostgresClient 提供 PostgreSQL 客户端
func ProvidePostgresClient(cfg *config.Config) (*postgres.Client, func(), error) {
	client, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

// ProvideRedisClient 提供 Redis 客户端
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

// ProvideMilvusClient 提供 Milvus 客户端；未启用向量库时返回 nil，
// 相似游戏检索整体降级为空结果
func ProvideMilvusClient(ctx context.Context, cfg *config.Config) (*milvus.Client, func(), error) {
	if !cfg.Vector.Enabled {
		return nil, func() {}, nil
	}
	client, err := milvus.NewClient(ctx, &cfg.Vector.Milvus)
	if err != nil {
		// 向量库不可达不阻塞启动
		logger.FromContext(ctx).Warn("milvus unavailable, similar games disabled", "error", err)
		return nil, func() {}, nil
	}
	return client, func() { _ = client.Close() }, nil
}

// ProvideVectorRepository 提供游戏向量仓储；客户端缺失时返回 nil
func ProvideVectorRepository(client *milvus.Client) repository.GameVectorRepository {
	if client == nil {
		return nil
	}
	return milvus.NewGameVectorRepository(client)
}

// ProvideCompletionClient 提供 OpenAI 兼容补全客户端
func ProvideCompletionClient(cfg *config.Config) *llm.CompletionClient {
	timeout := cfg.LLM.Timeout
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	return llm.NewCompletionClient(timeout)
}

// ProvideHuggingFaceClient 提供托管推理客户端
func ProvideHuggingFaceClient(cfg *config.Config) *llm.HuggingFaceClient {
	timeout := cfg.LLM.Timeout
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	return llm.NewHuggingFaceClient(cfg.LLM.HuggingFaceURL, cfg.LLM.HuggingFaceModel, timeout)
}

// ProvideProviderPool 提供后端句柄池。本进程不内置本地推理管线，
// LOCAL 后端在无管线工厂时判定不可用并走模板降级。
func ProvideProviderPool(completion *llm.CompletionClient) *llm.ProviderHandlePool {
	return llm.NewProviderHandlePool(nil, completion.Health)
}

// ProvideGenerator 提供文本生成器
func ProvideGenerator(cfg *config.Config, completion *llm.CompletionClient, hf *llm.HuggingFaceClient, pool *llm.ProviderHandlePool) *llm.Generator {
	return llm.NewGenerator(completion, hf, pool, cfg.LLM.ChatGPTModel)
}

// ProvideMediaStore 提供本地媒体存储
func ProvideMediaStore(cfg *config.Config) (*storage.LocalMediaStore, error) {
	return storage.NewLocalMediaStore(&cfg.Media)
}

// ProvideImageAdapter 提供文生图适配器
func ProvideImageAdapter(cfg *config.Config, sink *storage.LocalMediaStore) *imagegen.Adapter {
	var client *imagegen.TextToImageClient
	if cfg.Image.Endpoint != "" {
		timeout := cfg.Image.Timeout
		if timeout <= 0 {
			timeout = defaultLLMTimeout
		}
		client = imagegen.NewTextToImageClient(cfg.Image.Endpoint, timeout)
	}
	return imagegen.NewAdapter(client, sink, cfg.Media.ImageDir)
}

// ProvideLLMConfig 提供文本生成配置
func ProvideLLMConfig(cfg *config.Config) *config.LLMConfig {
	return &cfg.LLM
}

// ProvideJWTConfig 提供 JWT 配置
func ProvideJWTConfig(cfg *config.Config) *config.JWTConfig {
	return &cfg.Security.JWT
}

// ProvideEmbeddingConfig 提供 Embedding 配置
func ProvideEmbeddingConfig(cfg *config.Config) *config.EmbeddingConfig {
	return &cfg.Embedding
}

// ProvideComposer 提供内容组装器
func ProvideComposer(cfg *config.Config, generator *llm.Generator) *compose.Composer {
	return compose.NewComposer(generator, cfg.LLM.MaxNewTokens)
}

// ProvideJWTManager 提供 JWT 管理器
func ProvideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.Security.JWT.Secret, cfg.Security.JWT.Issuer)
}

// ProvideRateLimit 提供生成接口限流中间件
func ProvideRateLimit(cfg *config.Config, client *redis.Client) gin.HandlerFunc {
	return middleware.RateLimit(middleware.RateLimitConfig{
		Enabled:           cfg.Security.RateLimit.Enabled,
		RequestsPerMinute: cfg.Security.RateLimit.RequestsPerMinute,
	}, client.Redis())
}
