// Package entity 定义领域实体
package entity

import (
	"time"
)

// AIService 用户可选的文本生成服务
type AIService string

const (
	AIServiceLocal       AIService = "LOCAL"
	AIServiceHuggingFace AIService = "HUGGINGFACE"
	AIServiceLMStudio    AIService = "LMSTUDIO"
	AIServiceChatGPT     AIService = "CHATGPT"
)

// IsValidAIService 检查服务标识是否合法
func IsValidAIService(s AIService) bool {
	switch s {
	case AIServiceLocal, AIServiceHuggingFace, AIServiceLMStudio, AIServiceChatGPT:
		return true
	}
	return false
}

// GlobalSettingsID 全局设置单例行的固定主键
const GlobalSettingsID = 1

// DefaultRemoteLLMURL 全局设置缺省的远程补全服务地址
const DefaultRemoteLLMURL = "http://127.0.0.1:5000"

// GlobalAISettings 全局 AI 设置，逻辑上有且仅有一行；
// 对"新"实例的写入必须落到既有行上
type GlobalAISettings struct {
	ID           int       `json:"id" gorm:"primaryKey"`
	UseRemoteLLM bool      `json:"use_remote_llm" gorm:"default:false"`
	RemoteLLMURL string    `json:"remote_llm_url" gorm:"type:varchar(255)"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (GlobalAISettings) TableName() string {
	return "global_ai_settings"
}

// NewGlobalAISettings 创建带缺省值的全局设置
func NewGlobalAISettings() *GlobalAISettings {
	return &GlobalAISettings{
		ID:           GlobalSettingsID,
		UseRemoteLLM: false,
		RemoteLLMURL: DefaultRemoteLLMURL,
	}
}

// UserAISettings 每用户 AI 设置，首次访问时以缺省值懒创建
type UserAISettings struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           string    `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	AIService        AIService `json:"ai_service" gorm:"type:varchar(20);default:'LOCAL'"`
	HuggingFaceToken string    `json:"huggingface_token,omitempty" gorm:"type:varchar(255)"`
	ChatGPTToken     string    `json:"chatgpt_token,omitempty" gorm:"type:varchar(255)"`
	LMStudioURL      string    `json:"lmstudio_url,omitempty" gorm:"type:varchar(255)"`
	GenerateImages   bool      `json:"generate_images" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (UserAISettings) TableName() string {
	return "user_ai_settings"
}

// NewUserAISettings 创建带缺省值的用户设置
func NewUserAISettings(userID string) *UserAISettings {
	return &UserAISettings{
		UserID:         userID,
		AIService:      AIServiceLocal,
		GenerateImages: true,
	}
}
