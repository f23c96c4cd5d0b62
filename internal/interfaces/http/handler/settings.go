package handler

import (
	"github.com/gin-gonic/gin"

	"gameforge-api/internal/application/settings"
	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/interfaces/http/dto"
)

// SettingsHandler AI 设置处理器
type SettingsHandler struct {
	settings *settings.Service
}

// NewSettingsHandler 创建 AI 设置处理器
func NewSettingsHandler(settingsSvc *settings.Service) *SettingsHandler {
	return &SettingsHandler{settings: settingsSvc}
}

// GetGlobalSettings 获取全局 AI 设置（仅管理员）
// @Summary 全局 AI 设置
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.Response[entity.GlobalAISettings]
// @Router /v1/settings/global [get]
func (h *SettingsHandler) GetGlobalSettings(c *gin.Context) {
	global, err := h.settings.GetGlobalSettings(c.Request.Context())
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, global)
}

// UpdateGlobalSettings 更新全局 AI 设置（仅管理员）
// @Summary 更新全局 AI 设置
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body dto.UpdateGlobalSettingsRequest true "全局设置"
// @Success 200 {object} dto.Response[entity.GlobalAISettings]
// @Router /v1/settings/global [put]
func (h *SettingsHandler) UpdateGlobalSettings(c *gin.Context) {
	var req dto.UpdateGlobalSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	global, err := h.settings.UpdateGlobalSettings(c.Request.Context(), req.UseRemoteLLM, req.RemoteLLMURL)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, global)
}

// GetUserSettings 获取当前用户 AI 设置
// @Summary 用户 AI 设置
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.Response[dto.UserSettingsDTO]
// @Router /v1/settings/me [get]
func (h *SettingsHandler) GetUserSettings(c *gin.Context) {
	userSettings, err := h.settings.GetUserSettings(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, dto.ToUserSettingsDTO(userSettings))
}

// UpdateUserSettings 更新当前用户 AI 设置
// @Summary 更新用户 AI 设置
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body dto.UpdateUserSettingsRequest true "用户设置"
// @Success 200 {object} dto.Response[dto.UserSettingsDTO]
// @Router /v1/settings/me [put]
func (h *SettingsHandler) UpdateUserSettings(c *gin.Context) {
	var req dto.UpdateUserSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.AIService != nil && !entity.IsValidAIService(entity.AIService(*req.AIService)) {
		dto.BadRequest(c, "invalid ai_service: "+*req.AIService)
		return
	}

	userSettings, err := h.settings.UpdateUserSettings(c.Request.Context(), c.GetString("user_id"), req.ToUpdate())
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, dto.ToUserSettingsDTO(userSettings))
}
