// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/domain/repository"
)

// GameRepository 游戏仓储实现
type GameRepository struct {
	client *Client
}

// NewGameRepository 创建游戏仓储
func NewGameRepository(client *Client) *GameRepository {
	return &GameRepository{client: client}
}

// Create 创建游戏
func (r *GameRepository) Create(ctx context.Context, game *entity.Game) error {
	ctx, span := tracer.Start(ctx, "postgres.GameRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(game).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取游戏
func (r *GameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	ctx, span := tracer.Start(ctx, "postgres.GameRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var game entity.Game
	if err := db.First(&game, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return &game, nil
}

// Update 更新游戏
func (r *GameRepository) Update(ctx context.Context, game *entity.Game) error {
	ctx, span := tracer.Start(ctx, "postgres.GameRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(game).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update game: %w", err)
	}
	return nil
}

// Delete 删除游戏及其关联内容
func (r *GameRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.GameRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)

	// 先清理关联内容，再删除游戏本身
	if err := db.Delete(&entity.Character{}, "game_id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete game characters: %w", err)
	}
	if err := db.Delete(&entity.Location{}, "game_id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete game locations: %w", err)
	}
	if err := db.Delete(&entity.GameImage{}, "game_id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete game images: %w", err)
	}
	if err := db.Delete(&entity.Favorite{}, "game_id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete game favorites: %w", err)
	}
	if err := db.Delete(&entity.Game{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

// List 获取游戏列表
func (r *GameRepository) List(ctx context.Context, filter *repository.GameFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.Game], error) {
	ctx, span := tracer.Start(ctx, "postgres.GameRepository.List")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Game{})

	if filter != nil {
		if filter.PublicOnly {
			query = query.Where("is_public = ?", true)
		}
		if filter.CreatorID != "" {
			query = query.Where("creator_id = ?", filter.CreatorID)
		}
		if filter.Genre != "" {
			query = query.Where("genre = ?", filter.Genre)
		}
		if filter.Ambiance != "" {
			query = query.Where("ambiance = ?", filter.Ambiance)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count games: %w", err)
	}

	var games []*entity.Game
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&games).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return repository.NewPagedResult(games, total, pagination), nil
}

// ListByCreator 获取用户创建的游戏列表
func (r *GameRepository) ListByCreator(ctx context.Context, creatorID string, pagination repository.Pagination) (*repository.PagedResult[*entity.Game], error) {
	return r.List(ctx, &repository.GameFilter{CreatorID: creatorID}, pagination)
}

// ListByIDs 批量获取游戏
func (r *GameRepository) ListByIDs(ctx context.Context, ids []string) ([]*entity.Game, error) {
	ctx, span := tracer.Start(ctx, "postgres.GameRepository.ListByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []*entity.Game{}, nil
	}

	db := getDB(ctx, r.client.db)
	var games []*entity.Game
	if err := db.Where("id IN ?", ids).Find(&games).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list games by ids: %w", err)
	}
	return games, nil
}
