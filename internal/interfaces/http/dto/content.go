package dto

import (
	"gameforge-api/internal/application/game"
)

// CharacterRequest 角色创建/更新请求
type CharacterRequest struct {
	Name       string `json:"name" binding:"max=100"`
	Class      string `json:"class" binding:"max=100"`
	Role       string `json:"role" binding:"max=50"`
	Background string `json:"background"`
	Gameplay   string `json:"gameplay"`
}

// ToInput 转换为角色入参
func (r *CharacterRequest) ToInput() game.CharacterInput {
	return game.CharacterInput{
		Name:       r.Name,
		Class:      r.Class,
		Role:       r.Role,
		Background: r.Background,
		Gameplay:   r.Gameplay,
	}
}

// LocationRequest 场景创建/更新请求
type LocationRequest struct {
	Name        string `json:"name" binding:"max=100"`
	Description string `json:"description"`
}

// ToInput 转换为场景入参
func (r *LocationRequest) ToInput() game.LocationInput {
	return game.LocationInput{
		Name:        r.Name,
		Description: r.Description,
	}
}

// GenerateImageRequest 图片生成请求
type GenerateImageRequest struct {
	Prompt    string `json:"prompt" binding:"required,max=500"`
	ImageType string `json:"image_type" binding:"required"`
}
