// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"gameforge-api/internal/domain/entity"
)

// GameImageRepository 游戏图片仓储接口
type GameImageRepository interface {
	// Create 创建图片记录
	Create(ctx context.Context, image *entity.GameImage) error

	// GetByID 根据 ID 获取图片记录
	GetByID(ctx context.Context, id string) (*entity.GameImage, error)

	// Delete 删除图片记录
	Delete(ctx context.Context, id string) error

	// ListByGame 获取游戏的图片列表
	ListByGame(ctx context.Context, gameID string) ([]*entity.GameImage, error)
}
