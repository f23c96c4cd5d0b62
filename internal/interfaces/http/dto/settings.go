package dto

import (
	"gameforge-api/internal/application/settings"
	"gameforge-api/internal/domain/entity"
)

// UpdateGlobalSettingsRequest 全局 AI 设置更新请求（仅管理员）
type UpdateGlobalSettingsRequest struct {
	UseRemoteLLM bool   `json:"use_remote_llm"`
	RemoteLLMURL string `json:"remote_llm_url" binding:"omitempty,url,max=255"`
}

// UpdateUserSettingsRequest 用户 AI 设置更新请求；未提交字段保持不变
type UpdateUserSettingsRequest struct {
	AIService        *string `json:"ai_service"`
	HuggingFaceToken *string `json:"huggingface_token" binding:"omitempty,max=255"`
	ChatGPTToken     *string `json:"chatgpt_token" binding:"omitempty,max=255"`
	LMStudioURL      *string `json:"lmstudio_url" binding:"omitempty,url,max=255"`
	GenerateImages   *bool   `json:"generate_images"`
}

// ToUpdate 转换为更新入参
func (r *UpdateUserSettingsRequest) ToUpdate() settings.UserSettingsUpdate {
	update := settings.UserSettingsUpdate{
		HuggingFaceToken: r.HuggingFaceToken,
		ChatGPTToken:     r.ChatGPTToken,
		LMStudioURL:      r.LMStudioURL,
		GenerateImages:   r.GenerateImages,
	}
	if r.AIService != nil {
		svc := entity.AIService(*r.AIService)
		update.AIService = &svc
	}
	return update
}

// UserSettingsDTO 用户 AI 设置；令牌仅回显是否已配置
type UserSettingsDTO struct {
	AIService         string `json:"ai_service"`
	HasHuggingFaceKey bool   `json:"has_huggingface_token"`
	HasChatGPTKey     bool   `json:"has_chatgpt_token"`
	LMStudioURL       string `json:"lmstudio_url,omitempty"`
	GenerateImages    bool   `json:"generate_images"`
}

// ToUserSettingsDTO 实体转用户设置 DTO
func ToUserSettingsDTO(s *entity.UserAISettings) *UserSettingsDTO {
	return &UserSettingsDTO{
		AIService:         string(s.AIService),
		HasHuggingFaceKey: s.HuggingFaceToken != "",
		HasChatGPTKey:     s.ChatGPTToken != "",
		LMStudioURL:       s.LMStudioURL,
		GenerateImages:    s.GenerateImages,
	}
}
