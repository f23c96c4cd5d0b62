// Package entity 定义领域实体
package entity

import (
	"time"
)

// ImageType 图片类别
type ImageType string

const (
	ImageTypeCharacter ImageType = "CHARACTER"
	ImageTypeLocation  ImageType = "LOCATION"
	ImageTypeConcept   ImageType = "CONCEPT"
)

// IsValidImageType 检查图片类别是否合法
func IsValidImageType(t ImageType) bool {
	switch t {
	case ImageTypeCharacter, ImageTypeLocation, ImageTypeConcept:
		return true
	}
	return false
}

// GameImage 游戏图片实体
type GameImage struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GameID    string    `json:"game_id" gorm:"type:uuid;index;not null"`
	ImageType ImageType `json:"image_type" gorm:"type:varchar(20);not null"`
	Path      string    `json:"path" gorm:"type:varchar(255);not null"`
	Prompt    string    `json:"prompt" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (GameImage) TableName() string {
	return "game_images"
}
