// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gameforge-api/internal/domain/entity"
)

// GameImageRepository 游戏图片仓储实现
type GameImageRepository struct {
	client *Client
}

// NewGameImageRepository 创建游戏图片仓储
func NewGameImageRepository(client *Client) *GameImageRepository {
	return &GameImageRepository{client: client}
}

// Create 创建图片记录
func (r *GameImageRepository) Create(ctx context.Context, image *entity.GameImage) error {
	ctx, span := tracer.Start(ctx, "postgres.GameImageRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(image).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create game image: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取图片记录
func (r *GameImageRepository) GetByID(ctx context.Context, id string) (*entity.GameImage, error) {
	ctx, span := tracer.Start(ctx, "postgres.GameImageRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var image entity.GameImage
	if err := db.First(&image, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get game image: %w", err)
	}
	return &image, nil
}

// Delete 删除图片记录
func (r *GameImageRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.GameImageRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.GameImage{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete game image: %w", err)
	}
	return nil
}

// ListByGame 获取游戏的图片列表
func (r *GameImageRepository) ListByGame(ctx context.Context, gameID string) ([]*entity.GameImage, error) {
	ctx, span := tracer.Start(ctx, "postgres.GameImageRepository.ListByGame")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var images []*entity.GameImage
	if err := db.Where("game_id = ?", gameID).Order("created_at ASC").Find(&images).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list game images: %w", err)
	}
	return images, nil
}
