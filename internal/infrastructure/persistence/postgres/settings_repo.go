// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gameforge-api/internal/domain/entity"
)

// SettingsRepository AI 设置仓储实现
type SettingsRepository struct {
	client *Client
}

// NewSettingsRepository 创建 AI 设置仓储
func NewSettingsRepository(client *Client) *SettingsRepository {
	return &SettingsRepository{client: client}
}

// GetGlobal 获取全局设置行，不存在时返回 nil
func (r *SettingsRepository) GetGlobal(ctx context.Context) (*entity.GlobalAISettings, error) {
	ctx, span := tracer.Start(ctx, "postgres.SettingsRepository.GetGlobal")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var settings entity.GlobalAISettings
	if err := db.First(&settings, "id = ?", entity.GlobalSettingsID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get global ai settings: %w", err)
	}
	return &settings, nil
}

// SaveGlobal 写入全局设置，始终落到单例行
func (r *SettingsRepository) SaveGlobal(ctx context.Context, settings *entity.GlobalAISettings) error {
	ctx, span := tracer.Start(ctx, "postgres.SettingsRepository.SaveGlobal")
	defer span.End()

	settings.ID = entity.GlobalSettingsID

	db := getDB(ctx, r.client.db)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(settings).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to save global ai settings: %w", err)
	}
	return nil
}

// GetByUser 获取用户设置行，不存在时返回 nil
func (r *SettingsRepository) GetByUser(ctx context.Context, userID string) (*entity.UserAISettings, error) {
	ctx, span := tracer.Start(ctx, "postgres.SettingsRepository.GetByUser")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var settings entity.UserAISettings
	if err := db.First(&settings, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get user ai settings: %w", err)
	}
	return &settings, nil
}

// SaveUser 写入用户设置
func (r *SettingsRepository) SaveUser(ctx context.Context, settings *entity.UserAISettings) error {
	ctx, span := tracer.Start(ctx, "postgres.SettingsRepository.SaveUser")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(settings).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to save user ai settings: %w", err)
	}
	return nil
}
