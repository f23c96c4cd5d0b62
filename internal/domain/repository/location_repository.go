// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"gameforge-api/internal/domain/entity"
)

// LocationRepository 场景仓储接口
type LocationRepository interface {
	// Create 创建场景
	Create(ctx context.Context, location *entity.Location) error

	// CreateBatch 批量创建场景
	CreateBatch(ctx context.Context, locations []*entity.Location) error

	// GetByID 根据 ID 获取场景
	GetByID(ctx context.Context, id string) (*entity.Location, error)

	// Update 更新场景
	Update(ctx context.Context, location *entity.Location) error

	// Delete 删除场景
	Delete(ctx context.Context, id string) error

	// ListByGame 获取游戏的场景列表
	ListByGame(ctx context.Context, gameID string) ([]*entity.Location, error)
}
