// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"gameforge-api/internal/domain/entity"
)

// FavoriteRepository 收藏仓储接口
type FavoriteRepository interface {
	// Create 创建收藏
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete 删除收藏
	Delete(ctx context.Context, userID, gameID string) error

	// Get 获取收藏记录
	Get(ctx context.Context, userID, gameID string) (*entity.Favorite, error)

	// ListByUser 获取用户收藏列表
	ListByUser(ctx context.Context, userID string, pagination Pagination) (*PagedResult[*entity.Favorite], error)
}
