// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"gameforge-api/internal/domain/entity"
)

// SettingsRepository AI 设置仓储接口
type SettingsRepository interface {
	// GetGlobal 获取全局设置行，不存在时返回 nil
	GetGlobal(ctx context.Context) (*entity.GlobalAISettings, error)

	// SaveGlobal 写入全局设置，始终落到单例行
	SaveGlobal(ctx context.Context, settings *entity.GlobalAISettings) error

	// GetByUser 获取用户设置行，不存在时返回 nil
	GetByUser(ctx context.Context, userID string) (*entity.UserAISettings, error)

	// SaveUser 写入用户设置
	SaveUser(ctx context.Context, settings *entity.UserAISettings) error
}
