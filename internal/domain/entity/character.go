// Package entity 定义领域实体
package entity

import (
	"time"
)

// Character 游戏角色实体
type Character struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GameID     string    `json:"game_id" gorm:"type:uuid;index;not null"`
	Name       string    `json:"name" gorm:"type:varchar(100);not null"`
	Class      string    `json:"class" gorm:"column:character_class;type:varchar(100);not null"`
	Role       string    `json:"role" gorm:"type:varchar(100);not null"`
	Background string    `json:"background" gorm:"type:text"`
	Gameplay   string    `json:"gameplay" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Character) TableName() string {
	return "characters"
}
