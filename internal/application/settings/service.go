// Package settings 提供 AI 设置的解析与管理
package settings

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel"

	"gameforge-api/internal/config"
	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/domain/repository"
	"gameforge-api/internal/infrastructure/llm"
	"gameforge-api/internal/infrastructure/persistence/redis"
	"gameforge-api/pkg/logger"
	"gameforge-api/pkg/metrics"
)

var tracer = otel.Tracer("settings")

// 全局设置缓存 TTL 为 0：设置极少变更，写入时同步失效
const globalSettingsTTL = 0

// Resolution 一次生成请求使用的完整解析结果，每次调用重新计算
type Resolution struct {
	Provider llm.ResolvedProvider
	// GenerateImages 用户是否允许出图
	GenerateImages bool
	// ImageToken 文生图令牌
	ImageToken string
}

// Cache 设置服务依赖的缓存能力子集，由 redis.Cache 实现
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader func() (interface{}, error)) ([]byte, error)
	InvalidateGlobalSettings(ctx context.Context) error
	InvalidateUserSettings(ctx context.Context, userID string) error
}

// Service AI 设置服务：负责全局/用户设置的读写、
// 读穿缓存与每次请求的后端解析
type Service struct {
	repo  repository.SettingsRepository
	cache Cache
	cfg   *config.LLMConfig
	pool  *llm.ProviderHandlePool
}

// NewService 创建 AI 设置服务
func NewService(repo repository.SettingsRepository, cache Cache, cfg *config.LLMConfig, pool *llm.ProviderHandlePool) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
		pool:  pool,
	}
}

// Resolve 为指定用户（可为空）解析本次生成使用的后端配置。
// 用户设置选择非 LOCAL 服务时按该服务解析；否则回落到全局设置；
// 设置子系统不可达时回落到进程级配置缺省值。
func (s *Service) Resolve(ctx context.Context, userID string) Resolution {
	ctx, span := tracer.Start(ctx, "settings.Resolve")
	defer span.End()

	res := Resolution{GenerateImages: true}

	if userID != "" {
		userSettings, err := s.GetUserSettings(ctx, userID)
		if err != nil {
			logger.FromContext(ctx).Warn("failed to load user ai settings", "error", err)
		} else if userSettings != nil {
			res.GenerateImages = userSettings.GenerateImages
			res.ImageToken = userSettings.HuggingFaceToken

			if userSettings.AIService != entity.AIServiceLocal {
				res.Provider = s.providerForUser(userSettings)
				return res
			}
		}
	}

	res.Provider = s.resolveGlobal(ctx)
	return res
}

// providerForUser 按用户选择的服务构造后端配置；
// 缺失凭据不在此处拦截，由生成侧判定不可用并降级
func (s *Service) providerForUser(settings *entity.UserAISettings) llm.ResolvedProvider {
	switch settings.AIService {
	case entity.AIServiceHuggingFace:
		return llm.ResolvedProvider{
			Kind:  llm.KindHuggingFace,
			Token: settings.HuggingFaceToken,
			Model: s.cfg.HuggingFaceModel,
		}
	case entity.AIServiceLMStudio:
		return llm.ResolvedProvider{
			Kind:        llm.KindLMStudio,
			EndpointURL: settings.LMStudioURL,
		}
	case entity.AIServiceChatGPT:
		return llm.ResolvedProvider{
			Kind:        llm.KindChatGPT,
			EndpointURL: s.cfg.ChatGPTURL,
			Token:       settings.ChatGPTToken,
			Model:       s.cfg.ChatGPTModel,
		}
	default:
		return llm.ResolvedProvider{Kind: llm.KindLocal}
	}
}

// resolveGlobal 按全局设置解析；读取失败时回落到进程配置
func (s *Service) resolveGlobal(ctx context.Context) llm.ResolvedProvider {
	global, err := s.GetGlobalSettings(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("failed to load global ai settings, using process defaults", "error", err)
		if s.cfg.UseRemote {
			return llm.ResolvedProvider{Kind: llm.KindRemoteDefault, EndpointURL: s.cfg.RemoteURL}
		}
		return llm.ResolvedProvider{Kind: llm.KindLocal}
	}

	if global.UseRemoteLLM {
		url := global.RemoteLLMURL
		if url == "" {
			url = s.cfg.RemoteURL
		}
		return llm.ResolvedProvider{Kind: llm.KindRemoteDefault, EndpointURL: url}
	}
	return llm.ResolvedProvider{Kind: llm.KindLocal}
}

// GetGlobalSettings 获取全局设置（读穿缓存，不存在时以缺省值创建）
func (s *Service) GetGlobalSettings(ctx context.Context) (*entity.GlobalAISettings, error) {
	ctx, span := tracer.Start(ctx, "settings.GetGlobalSettings")
	defer span.End()

	if cached, err := s.cache.Get(ctx, redis.GlobalSettingsKey); err == nil {
		var settings entity.GlobalAISettings
		if err := json.Unmarshal(cached, &settings); err == nil {
			metrics.SettingsCacheHits.WithLabelValues("hit").Inc()
			return &settings, nil
		}
	}
	metrics.SettingsCacheHits.WithLabelValues("miss").Inc()

	data, err := s.cache.GetOrLoad(ctx, redis.GlobalSettingsKey, globalSettingsTTL, func() (interface{}, error) {
		settings, err := s.repo.GetGlobal(ctx)
		if err != nil {
			return nil, err
		}
		if settings == nil {
			settings = entity.NewGlobalAISettings()
			settings.RemoteLLMURL = s.cfg.RemoteURL
			if err := s.repo.SaveGlobal(ctx, settings); err != nil {
				return nil, err
			}
			logger.FromContext(ctx).Info("global ai settings created with defaults")
		}
		return settings, nil
	})
	if err != nil {
		return nil, err
	}

	var settings entity.GlobalAISettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateGlobalSettings 更新全局设置并同步失效缓存与探活记录
func (s *Service) UpdateGlobalSettings(ctx context.Context, useRemote bool, remoteURL string) (*entity.GlobalAISettings, error) {
	ctx, span := tracer.Start(ctx, "settings.UpdateGlobalSettings")
	defer span.End()

	settings := entity.NewGlobalAISettings()
	settings.UseRemoteLLM = useRemote
	if remoteURL != "" {
		settings.RemoteLLMURL = remoteURL
	}

	if err := s.repo.SaveGlobal(ctx, settings); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateGlobalSettings(ctx); err != nil {
		logger.FromContext(ctx).Warn("failed to invalidate global settings cache", "error", err)
	}
	s.pool.InvalidateHealth()

	logger.FromContext(ctx).Info("global ai settings updated",
		"use_remote_llm", useRemote, "remote_llm_url", settings.RemoteLLMURL)
	return settings, nil
}

// GetUserSettings 获取用户设置，首次访问时以缺省值懒创建
func (s *Service) GetUserSettings(ctx context.Context, userID string) (*entity.UserAISettings, error) {
	ctx, span := tracer.Start(ctx, "settings.GetUserSettings")
	defer span.End()

	settings, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.NewUserAISettings(userID)
		if err := s.repo.SaveUser(ctx, settings); err != nil {
			return nil, err
		}
		logger.FromContext(ctx).Info("user ai settings created with defaults",
			"user_id", userID)
	}
	return settings, nil
}

// UserSettingsUpdate 用户设置更新入参；nil 字段保持不变
type UserSettingsUpdate struct {
	AIService        *entity.AIService
	HuggingFaceToken *string
	ChatGPTToken     *string
	LMStudioURL      *string
	GenerateImages   *bool
}

// UpdateUserSettings 更新用户设置
func (s *Service) UpdateUserSettings(ctx context.Context, userID string, update UserSettingsUpdate) (*entity.UserAISettings, error) {
	ctx, span := tracer.Start(ctx, "settings.UpdateUserSettings")
	defer span.End()

	settings, err := s.GetUserSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.AIService != nil {
		settings.AIService = *update.AIService
	}
	if update.HuggingFaceToken != nil {
		settings.HuggingFaceToken = *update.HuggingFaceToken
	}
	if update.ChatGPTToken != nil {
		settings.ChatGPTToken = *update.ChatGPTToken
	}
	if update.LMStudioURL != nil {
		settings.LMStudioURL = *update.LMStudioURL
	}
	if update.GenerateImages != nil {
		settings.GenerateImages = *update.GenerateImages
	}

	if err := s.repo.SaveUser(ctx, settings); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateUserSettings(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn("failed to invalidate user settings cache", "error", err)
	}

	return settings, nil
}
