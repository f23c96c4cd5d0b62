// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"gameforge-api/internal/domain/entity"
)

// GameFilter 游戏过滤条件
type GameFilter struct {
	CreatorID string
	Genre     entity.GameGenre
	Ambiance  entity.GameAmbiance
	PublicOnly bool
}

// GameRepository 游戏仓储接口
type GameRepository interface {
	// Create 创建游戏
	Create(ctx context.Context, game *entity.Game) error

	// GetByID 根据 ID 获取游戏
	GetByID(ctx context.Context, id string) (*entity.Game, error)

	// Update 更新游戏
	Update(ctx context.Context, game *entity.Game) error

	// Delete 删除游戏及其关联内容
	Delete(ctx context.Context, id string) error

	// List 获取游戏列表
	List(ctx context.Context, filter *GameFilter, pagination Pagination) (*PagedResult[*entity.Game], error)

	// ListByCreator 获取用户创建的游戏列表
	ListByCreator(ctx context.Context, creatorID string, pagination Pagination) (*PagedResult[*entity.Game], error)

	// ListByIDs 批量获取游戏
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Game, error)
}
