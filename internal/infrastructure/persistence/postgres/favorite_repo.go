// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/domain/repository"
)

// FavoriteRepository 收藏仓储实现
type FavoriteRepository struct {
	client *Client
}

// NewFavoriteRepository 创建收藏仓储
func NewFavoriteRepository(client *Client) *FavoriteRepository {
	return &FavoriteRepository{client: client}
}

// Create 创建收藏
func (r *FavoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	ctx, span := tracer.Start(ctx, "postgres.FavoriteRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(favorite).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// Delete 删除收藏
func (r *FavoriteRepository) Delete(ctx context.Context, userID, gameID string) error {
	ctx, span := tracer.Start(ctx, "postgres.FavoriteRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Favorite{}, "user_id = ? AND game_id = ?", userID, gameID).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

// Get 获取收藏记录
func (r *FavoriteRepository) Get(ctx context.Context, userID, gameID string) (*entity.Favorite, error) {
	ctx, span := tracer.Start(ctx, "postgres.FavoriteRepository.Get")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var favorite entity.Favorite
	if err := db.First(&favorite, "user_id = ? AND game_id = ?", userID, gameID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get favorite: %w", err)
	}
	return &favorite, nil
}

// ListByUser 获取用户收藏列表
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string, pagination repository.Pagination) (*repository.PagedResult[*entity.Favorite], error) {
	ctx, span := tracer.Start(ctx, "postgres.FavoriteRepository.ListByUser")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Favorite{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count favorites: %w", err)
	}

	var favorites []*entity.Favorite
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&favorites).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	return repository.NewPagedResult(favorites, total, pagination), nil
}
