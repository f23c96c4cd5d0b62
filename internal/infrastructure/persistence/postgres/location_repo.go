// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gameforge-api/internal/domain/entity"
)

// LocationRepository 场景仓储实现
type LocationRepository struct {
	client *Client
}

// NewLocationRepository 创建场景仓储
func NewLocationRepository(client *Client) *LocationRepository {
	return &LocationRepository{client: client}
}

// Create 创建场景
func (r *LocationRepository) Create(ctx context.Context, location *entity.Location) error {
	ctx, span := tracer.Start(ctx, "postgres.LocationRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(location).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

// CreateBatch 批量创建场景
func (r *LocationRepository) CreateBatch(ctx context.Context, locations []*entity.Location) error {
	ctx, span := tracer.Start(ctx, "postgres.LocationRepository.CreateBatch")
	defer span.End()

	if len(locations) == 0 {
		return nil
	}

	db := getDB(ctx, r.client.db)
	if err := db.Create(locations).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create locations: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取场景
func (r *LocationRepository) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	ctx, span := tracer.Start(ctx, "postgres.LocationRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var location entity.Location
	if err := db.First(&location, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &location, nil
}

// Update 更新场景
func (r *LocationRepository) Update(ctx context.Context, location *entity.Location) error {
	ctx, span := tracer.Start(ctx, "postgres.LocationRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(location).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update location: %w", err)
	}
	return nil
}

// Delete 删除场景
func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.LocationRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Location{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

// ListByGame 获取游戏的场景列表
func (r *LocationRepository) ListByGame(ctx context.Context, gameID string) ([]*entity.Location, error) {
	ctx, span := tracer.Start(ctx, "postgres.LocationRepository.ListByGame")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var locations []*entity.Location
	if err := db.Where("game_id = ?", gameID).Order("created_at ASC").Find(&locations).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}
