// Package milvus 提供 Milvus 向量数据库访问层实现
package milvus

import (
	"github.com/milvus-io/milvus-sdk-go/v2/entity"
)

const (
	// CollectionGameVectors 游戏剧情前提向量集合
	CollectionGameVectors = "game_vectors"

	// VectorDimension 向量维度（bge-m3）
	VectorDimension = 1024
)

// GameVectorsSchema 游戏向量 Collection Schema
func GameVectorsSchema() *entity.Schema {
	return &entity.Schema{
		CollectionName: CollectionGameVectors,
		Description:    "Game story premise embeddings for similarity search",
		Fields: []*entity.Field{
			{
				Name:       "game_id",
				DataType:   entity.FieldTypeVarChar,
				PrimaryKey: true,
				AutoID:     false,
				TypeParams: map[string]string{
					"max_length": "64",
				},
			},
			{
				Name:     "vector",
				DataType: entity.FieldTypeFloatVector,
				TypeParams: map[string]string{
					"dim": "1024",
				},
			},
			{
				Name:     "is_public",
				DataType: entity.FieldTypeBool,
			},
		},
	}
}
