// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"gameforge-api/internal/domain/entity"
)

// CharacterRepository 角色仓储接口
type CharacterRepository interface {
	// Create 创建角色
	Create(ctx context.Context, character *entity.Character) error

	// CreateBatch 批量创建角色
	CreateBatch(ctx context.Context, characters []*entity.Character) error

	// GetByID 根据 ID 获取角色
	GetByID(ctx context.Context, id string) (*entity.Character, error)

	// Update 更新角色
	Update(ctx context.Context, character *entity.Character) error

	// Delete 删除角色
	Delete(ctx context.Context, id string) error

	// ListByGame 获取游戏的角色列表
	ListByGame(ctx context.Context, gameID string) ([]*entity.Character, error)
}
