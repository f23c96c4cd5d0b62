// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gameforge-api/internal/domain/entity"
	"gameforge-api/pkg/logger"
)

// AutoMigrate 执行数据库表结构迁移
func AutoMigrate(ctx context.Context, client *Client) error {
	log := logger.FromContext(ctx)
	log.Info("running database migrations")

	if err := client.db.WithContext(ctx).AutoMigrate(
		&entity.User{},
		&entity.Game{},
		&entity.Character{},
		&entity.Location{},
		&entity.GameImage{},
		&entity.Favorite{},
		&entity.GlobalAISettings{},
		&entity.UserAISettings{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}
