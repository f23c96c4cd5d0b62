// Package milvus 提供 Milvus 向量数据库访问层实现
package milvus

import (
	"context"
	"fmt"

	"github.com/milvus-io/milvus-sdk-go/v2/entity"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gameforge-api/internal/domain/repository"
)

// GameVectorRepository 游戏向量仓储实现
type GameVectorRepository struct {
	client *Client
}

// NewGameVectorRepository 创建游戏向量仓储
func NewGameVectorRepository(client *Client) *GameVectorRepository {
	return &GameVectorRepository{client: client}
}

// EnsureCollection 确保集合与索引可用（不存在则创建）。
// 约束：不会做 drop/rebuild 等破坏性操作。
func (r *GameVectorRepository) EnsureCollection(ctx context.Context) error {
	if r == nil || r.client == nil || r.client.milvus == nil {
		return fmt.Errorf("milvus client not configured")
	}

	exists, err := r.client.HasCollection(ctx, CollectionGameVectors)
	if err != nil {
		return err
	}
	if !exists {
		schema := GameVectorsSchema()
		schema.CollectionName = r.client.CollectionName(CollectionGameVectors)
		if err := r.client.milvus.CreateCollection(ctx, schema, entity.DefaultShardNumber); err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}

		idx, err := entity.NewIndexHNSW(entity.COSINE, 16, 200)
		if err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
		if err := r.client.milvus.CreateIndex(ctx, schema.CollectionName, "vector", idx, false); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return r.client.LoadCollection(ctx, CollectionGameVectors)
}

// Upsert 写入或更新游戏向量
func (r *GameVectorRepository) Upsert(ctx context.Context, vec *repository.GameVector) error {
	if r == nil || r.client == nil || r.client.milvus == nil {
		return fmt.Errorf("milvus client not configured")
	}
	ctx, span := tracer.Start(ctx, "milvus.GameVectorRepository.Upsert",
		trace.WithAttributes(attribute.String("game_id", vec.GameID)))
	defer span.End()

	collName := r.client.CollectionName(CollectionGameVectors)

	// 先删除旧向量，保证主键唯一
	filter := fmt.Sprintf(`game_id == "%s"`, vec.GameID)
	_ = r.client.milvus.Delete(ctx, collName, "", filter)

	idCol := entity.NewColumnVarChar("game_id", []string{vec.GameID})
	vectorCol := entity.NewColumnFloatVector("vector", VectorDimension, [][]float32{vec.Vector})
	publicCol := entity.NewColumnBool("is_public", []bool{vec.IsPublic})

	if _, err := r.client.milvus.Insert(ctx, collName, "", idCol, vectorCol, publicCol); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to insert game vector: %w", err)
	}
	return nil
}

// Delete 删除游戏向量
func (r *GameVectorRepository) Delete(ctx context.Context, gameID string) error {
	if r == nil || r.client == nil || r.client.milvus == nil {
		return fmt.Errorf("milvus client not configured")
	}
	ctx, span := tracer.Start(ctx, "milvus.GameVectorRepository.Delete",
		trace.WithAttributes(attribute.String("game_id", gameID)))
	defer span.End()

	collName := r.client.CollectionName(CollectionGameVectors)
	filter := fmt.Sprintf(`game_id == "%s"`, gameID)

	if err := r.client.milvus.Delete(ctx, collName, "", filter); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete game vector: %w", err)
	}
	return nil
}

// SearchSimilar 检索相似的公开游戏
func (r *GameVectorRepository) SearchSimilar(ctx context.Context, vector []float32, topK int, excludeGameID string) ([]*repository.SimilarGame, error) {
	if r == nil || r.client == nil || r.client.milvus == nil {
		return nil, fmt.Errorf("milvus client not configured")
	}
	ctx, span := tracer.Start(ctx, "milvus.GameVectorRepository.SearchSimilar",
		trace.WithAttributes(attribute.Int("top_k", topK)))
	defer span.End()

	collName := r.client.CollectionName(CollectionGameVectors)

	filter := "is_public == true"
	if excludeGameID != "" {
		filter += fmt.Sprintf(` && game_id != "%s"`, excludeGameID)
	}

	sp, err := entity.NewIndexHNSWSearchParam(128)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to create search param: %w", err)
	}

	results, err := r.client.milvus.Search(ctx,
		collName,
		nil,
		filter,
		[]string{"game_id"},
		[]entity.Vector{entity.FloatVector(vector)},
		"vector",
		entity.COSINE,
		topK,
		sp,
	)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to search game vectors: %w", err)
	}

	var similar []*repository.SimilarGame
	for _, result := range results {
		for i := 0; i < result.ResultCount; i++ {
			sg := &repository.SimilarGame{Score: result.Scores[i]}
			if idCol, ok := result.Fields.GetColumn("game_id").(*entity.ColumnVarChar); ok {
				sg.GameID = idCol.Data()[i]
			}
			similar = append(similar, sg)
		}
	}

	span.SetAttributes(attribute.Int("result_count", len(similar)))
	return similar, nil
}
