// Package entity 定义领域实体
package entity

import (
	"time"
)

// Favorite 收藏实体，(user_id, game_id) 唯一
type Favorite struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string    `json:"user_id" gorm:"type:uuid;uniqueIndex:idx_favorites_user_game;not null"`
	GameID    string    `json:"game_id" gorm:"type:uuid;uniqueIndex:idx_favorites_user_game;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (Favorite) TableName() string {
	return "favorites"
}
