package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gameforge-api/internal/domain/entity"
	"gameforge-api/pkg/errors"
	"gameforge-api/pkg/logger"
)

const defaultSimilarTopK = 5

// SimilarResult 相似游戏及其相似度分数
type SimilarResult struct {
	Game  *entity.Game
	Score float32
}

// SimilarGames 基于故事前提向量检索相似的公开游戏。
// 向量服务未配置时返回空列表而非错误。
func (s *Service) SimilarGames(ctx context.Context, userID, gameID string, topK int) ([]*SimilarResult, error) {
	ctx, span := tracer.Start(ctx, "game.SimilarGames",
		trace.WithAttributes(attribute.Int("top_k", topK)))
	defer span.End()

	game, err := s.GetGame(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}

	if s.embedder == nil || s.vectors == nil {
		return []*SimilarResult{}, nil
	}
	if topK <= 0 {
		topK = defaultSimilarTopK
	}

	vector, err := s.embedder.EmbedOne(ctx, game.StoryPremise)
	if err != nil {
		span.RecordError(err)
		logger.FromContext(ctx).Warn("failed to embed premise for similarity search", "error", err)
		return []*SimilarResult{}, nil
	}

	hits, err := s.vectors.SearchSimilar(ctx, vector, topK, gameID)
	if err != nil {
		span.RecordError(err)
		logger.FromContext(ctx).Warn("similarity search failed", "error", err)
		return []*SimilarResult{}, nil
	}
	if len(hits) == 0 {
		return []*SimilarResult{}, nil
	}

	ids := make([]string, 0, len(hits))
	scores := make(map[string]float32, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.GameID)
		scores[hit.GameID] = hit.Score
	}

	games, err := s.games.ListByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load similar games")
	}

	byID := make(map[string]*entity.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	// 按相似度排序返回，索引中残留的已删除/转私有游戏跳过
	results := make([]*SimilarResult, 0, len(hits))
	for _, hit := range hits {
		g, ok := byID[hit.GameID]
		if !ok || !g.IsPublic {
			continue
		}
		results = append(results, &SimilarResult{Game: g, Score: scores[g.ID]})
	}
	return results, nil
}
