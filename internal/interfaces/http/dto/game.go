package dto

import (
	"gameforge-api/internal/application/game"
	"gameforge-api/internal/domain/entity"
)

// CreateGameRequest 创建游戏请求
type CreateGameRequest struct {
	Title      string `json:"title" binding:"max=100"`
	Genre      string `json:"genre" binding:"required"`
	Ambiance   string `json:"ambiance" binding:"required"`
	Keywords   string `json:"keywords" binding:"max=200"`
	References string `json:"references" binding:"max=200"`
	IsPublic   *bool  `json:"is_public"`

	CharacterCount int `json:"character_count" binding:"min=0,max=10"`
	LocationCount  int `json:"location_count" binding:"min=0,max=10"`

	UseRandom bool `json:"use_random"`
}

// ToInput 转换为创建入参
func (r *CreateGameRequest) ToInput() game.CreateGameInput {
	isPublic := true
	if r.IsPublic != nil {
		isPublic = *r.IsPublic
	}
	return game.CreateGameInput{
		Title:          r.Title,
		Genre:          entity.GameGenre(r.Genre),
		Ambiance:       entity.GameAmbiance(r.Ambiance),
		Keywords:       r.Keywords,
		References:     r.References,
		IsPublic:       isPublic,
		CharacterCount: r.CharacterCount,
		LocationCount:  r.LocationCount,
		UseRandom:      r.UseRandom,
	}
}

// UpdateGameRequest 更新游戏请求；未提交字段保持不变
type UpdateGameRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=100"`
	Keywords   *string `json:"keywords" binding:"omitempty,max=200"`
	References *string `json:"references" binding:"omitempty,max=200"`
	IsPublic   *bool   `json:"is_public"`

	StoryPremise *string `json:"story_premise"`
	StoryAct1    *string `json:"story_act1"`
	StoryAct2    *string `json:"story_act2"`
	StoryAct3    *string `json:"story_act3"`
	StoryTwist   *string `json:"story_twist"`
}

// ToUpdate 转换为更新入参
func (r *UpdateGameRequest) ToUpdate() game.GameUpdate {
	return game.GameUpdate{
		Title:        r.Title,
		Keywords:     r.Keywords,
		References:   r.References,
		IsPublic:     r.IsPublic,
		StoryPremise: r.StoryPremise,
		StoryAct1:    r.StoryAct1,
		StoryAct2:    r.StoryAct2,
		StoryAct3:    r.StoryAct3,
		StoryTwist:   r.StoryTwist,
	}
}

// ListGamesQuery 游戏列表查询参数
type ListGamesQuery struct {
	Page     int    `form:"page,default=1" binding:"min=0"`
	PageSize int    `form:"page_size,default=20" binding:"min=0,max=100"`
	Genre    string `form:"genre"`
	Ambiance string `form:"ambiance"`
}

// SimilarGameDTO 相似游戏检索结果
type SimilarGameDTO struct {
	Game  *entity.Game `json:"game"`
	Score float32      `json:"score"`
}

// ToSimilarGameDTOs 转换相似游戏结果列表
func ToSimilarGameDTOs(results []*game.SimilarResult) []*SimilarGameDTO {
	out := make([]*SimilarGameDTO, 0, len(results))
	for _, r := range results {
		out = append(out, &SimilarGameDTO{Game: r.Game, Score: r.Score})
	}
	return out
}
