// Package entity 定义领域实体
package entity

import (
	"time"
)

// GameGenre 游戏类型
type GameGenre string

const (
	GenreRPG          GameGenre = "RPG"
	GenreFPS          GameGenre = "FPS"
	GenreAdventure    GameGenre = "ADVENTURE"
	GenreStrategy     GameGenre = "STRATEGY"
	GenreSimulation   GameGenre = "SIMULATION"
	GenrePuzzle       GameGenre = "PUZZLE"
	GenrePlatformer   GameGenre = "PLATFORMER"
	GenreMetroidvania GameGenre = "METROIDVANIA"
	GenreVisualNovel  GameGenre = "VISUAL_NOVEL"
	GenreOther        GameGenre = "OTHER"
)

// GameAmbiance 游戏氛围
type GameAmbiance string

const (
	AmbiancePostApocalyptic GameAmbiance = "POST_APOCALYPTIC"
	AmbianceFantasy         GameAmbiance = "FANTASY"
	AmbianceSciFi           GameAmbiance = "SCI_FI"
	AmbianceCyberpunk       GameAmbiance = "CYBERPUNK"
	AmbianceHorror          GameAmbiance = "HORROR"
	AmbianceMystery         GameAmbiance = "MYSTERY"
	AmbianceHistorical      GameAmbiance = "HISTORICAL"
	AmbianceSteampunk       GameAmbiance = "STEAMPUNK"
	AmbianceDreamlike       GameAmbiance = "DREAMLIKE"
	AmbianceDarkFantasy     GameAmbiance = "DARK_FANTASY"
	AmbianceOther           GameAmbiance = "OTHER"
)

// ValidGenres 所有合法游戏类型
func ValidGenres() []GameGenre {
	return []GameGenre{
		GenreRPG, GenreFPS, GenreAdventure, GenreStrategy, GenreSimulation,
		GenrePuzzle, GenrePlatformer, GenreMetroidvania, GenreVisualNovel, GenreOther,
	}
}

// ValidAmbiances 所有合法游戏氛围
func ValidAmbiances() []GameAmbiance {
	return []GameAmbiance{
		AmbiancePostApocalyptic, AmbianceFantasy, AmbianceSciFi, AmbianceCyberpunk,
		AmbianceHorror, AmbianceMystery, AmbianceHistorical, AmbianceSteampunk,
		AmbianceDreamlike, AmbianceDarkFantasy, AmbianceOther,
	}
}

// IsValidGenre 检查游戏类型是否合法
func IsValidGenre(g GameGenre) bool {
	for _, v := range ValidGenres() {
		if v == g {
			return true
		}
	}
	return false
}

// IsValidAmbiance 检查游戏氛围是否合法
func IsValidAmbiance(a GameAmbiance) bool {
	for _, v := range ValidAmbiances() {
		if v == a {
			return true
		}
	}
	return false
}

// Game 游戏设计文档实体
type Game struct {
	ID         string       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatorID  string       `json:"creator_id" gorm:"type:uuid;index;not null"`
	Title      string       `json:"title" gorm:"type:varchar(100);not null"`
	Genre      GameGenre    `json:"genre" gorm:"type:varchar(20);not null"`
	Ambiance   GameAmbiance `json:"ambiance" gorm:"type:varchar(20);not null"`
	Keywords   string       `json:"keywords" gorm:"type:varchar(200)"`
	References string       `json:"references" gorm:"type:varchar(200)"`

	// 故事结构
	StoryPremise string `json:"story_premise" gorm:"type:text"`
	StoryAct1    string `json:"story_act1" gorm:"type:text"`
	StoryAct2    string `json:"story_act2" gorm:"type:text"`
	StoryAct3    string `json:"story_act3" gorm:"type:text"`
	StoryTwist   string `json:"story_twist" gorm:"type:text"`

	IsPublic  bool      `json:"is_public" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Game) TableName() string {
	return "games"
}

// NewGame 创建新游戏
func NewGame(creatorID, title string, genre GameGenre, ambiance GameAmbiance) *Game {
	now := time.Now()
	return &Game{
		CreatorID: creatorID,
		Title:     title,
		Genre:     genre,
		Ambiance:  ambiance,
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// VisibleTo 检查游戏对指定用户是否可见
func (g *Game) VisibleTo(userID string) bool {
	return g.IsPublic || g.CreatorID == userID
}

// OwnedBy 检查游戏是否属于指定用户
func (g *Game) OwnedBy(userID string) bool {
	return g.CreatorID == userID
}
