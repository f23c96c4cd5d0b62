// Package repository 定义数据访问层接口
package repository

import (
	"context"
)

// GameVector 游戏向量记录
type GameVector struct {
	GameID   string
	IsPublic bool
	Vector   []float32
}

// SimilarGame 相似游戏检索结果
type SimilarGame struct {
	GameID string
	Score  float32
}

// GameVectorRepository 游戏向量仓储接口（相似游戏检索）
type GameVectorRepository interface {
	// Upsert 写入或更新游戏向量
	Upsert(ctx context.Context, vec *GameVector) error

	// Delete 删除游戏向量
	Delete(ctx context.Context, gameID string) error

	// SearchSimilar 检索相似的公开游戏
	SearchSimilar(ctx context.Context, vector []float32, topK int, excludeGameID string) ([]*SimilarGame, error)
}
