package game

import (
	"context"

	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/domain/repository"
	"gameforge-api/pkg/errors"
	"gameforge-api/pkg/logger"
)

// ToggleFavorite 切换收藏状态，返回切换后是否已收藏。
// 仅公开游戏或自己创建的游戏可收藏。
func (s *Service) ToggleFavorite(ctx context.Context, userID, gameID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "game.ToggleFavorite")
	defer span.End()

	if _, err := s.GetGame(ctx, userID, gameID); err != nil {
		return false, err
	}

	existing, err := s.favorites.Get(ctx, userID, gameID)
	if err != nil {
		return false, errors.Wrap(err, errors.CodeDatabaseError, "failed to load favorite")
	}

	if existing != nil {
		if err := s.favorites.Delete(ctx, userID, gameID); err != nil {
			return false, errors.Wrap(err, errors.CodeDatabaseError, "failed to remove favorite")
		}
		return false, nil
	}

	favorite := &entity.Favorite{UserID: userID, GameID: gameID}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		return false, errors.Wrap(err, errors.CodeDatabaseError, "failed to add favorite")
	}
	return true, nil
}

// ListFavorites 按收藏时间倒序列出用户收藏的游戏
func (s *Service) ListFavorites(ctx context.Context, userID string, pagination repository.Pagination) (*repository.PagedResult[*entity.Game], error) {
	ctx, span := tracer.Start(ctx, "game.ListFavorites")
	defer span.End()

	favorites, err := s.favorites.ListByUser(ctx, userID, pagination)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to list favorites")
	}

	ids := make([]string, 0, len(favorites.Items))
	for _, fav := range favorites.Items {
		ids = append(ids, fav.GameID)
	}

	games, err := s.games.ListByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load favorite games")
	}

	// 保持收藏顺序；已转私有且非本人的游戏跳过
	byID := make(map[string]*entity.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}
	ordered := make([]*entity.Game, 0, len(ids))
	for _, id := range ids {
		g, ok := byID[id]
		if !ok {
			logger.FromContext(ctx).Warn("favorite references missing game", "game_id", id)
			continue
		}
		if !g.VisibleTo(userID) {
			continue
		}
		ordered = append(ordered, g)
	}

	return &repository.PagedResult[*entity.Game]{
		Items:      ordered,
		Total:      favorites.Total,
		Page:       favorites.Page,
		PageSize:   favorites.PageSize,
		TotalPages: favorites.TotalPages,
	}, nil
}
