package handler

import (
	"github.com/gin-gonic/gin"

	"gameforge-api/internal/application/game"
	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/interfaces/http/dto"
)

// ContentHandler 游戏内容处理器：角色、场景与图片
type ContentHandler struct {
	games *game.Service
}

// NewContentHandler 创建游戏内容处理器
func NewContentHandler(games *game.Service) *ContentHandler {
	return &ContentHandler{games: games}
}

// ListCharacters 角色列表
// @Summary 游戏角色列表
// @Tags Content
// @Produce json
// @Param gid path string true "游戏 ID"
// @Success 200 {object} dto.Response[[]entity.Character]
// @Router /v1/games/{gid}/characters [get]
func (h *ContentHandler) ListCharacters(c *gin.Context) {
	characters, err := h.games.ListCharacters(c.Request.Context(), c.GetString("user_id"), c.Param("gid"))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, characters)
}

// CreateCharacter 手动添加角色
// @Summary 添加角色
// @Tags Content
// @Accept json
// @Produce json
// @Param gid path string true "游戏 ID"
// @Param body body dto.CharacterRequest true "角色信息"
// @Success 201 {object} dto.Response[entity.Character]
// @Router /v1/games/{gid}/characters [post]
func (h *ContentHandler) CreateCharacter(c *gin.Context) {
	var req dto.CharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	character, err := h.games.CreateCharacter(c.Request.Context(), c.GetString("user_id"), c.Param("gid"), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Created(c, character)
}

// UpdateCharacter 更新角色
// @Summary 更新角色
// @Tags Content
// @Accept json
// @Produce json
// @Param cid path string true "角色 ID"
// @Param body body dto.CharacterRequest true "角色信息"
// @Success 200 {object} dto.Response[entity.Character]
// @Router /v1/characters/{cid} [put]
func (h *ContentHandler) UpdateCharacter(c *gin.Context) {
	var req dto.CharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	character, err := h.games.UpdateCharacter(c.Request.Context(), c.GetString("user_id"), c.Param("cid"), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, character)
}

// DeleteCharacter 删除角色
// @Summary 删除角色
// @Tags Content
// @Param cid path string true "角色 ID"
// @Success 204
// @Router /v1/characters/{cid} [delete]
func (h *ContentHandler) DeleteCharacter(c *gin.Context) {
	if err := h.games.DeleteCharacter(c.Request.Context(), c.GetString("user_id"), c.Param("cid")); err != nil {
		dto.Fail(c, err)
		return
	}

	dto.NoContent(c)
}

// ListLocations 场景列表
// @Summary 游戏场景列表
// @Tags Content
// @Produce json
// @Param gid path string true "游戏 ID"
// @Success 200 {object} dto.Response[[]entity.Location]
// @Router /v1/games/{gid}/locations [get]
func (h *ContentHandler) ListLocations(c *gin.Context) {
	locations, err := h.games.ListLocations(c.Request.Context(), c.GetString("user_id"), c.Param("gid"))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, locations)
}

// CreateLocation 手动添加场景
// @Summary 添加场景
// @Tags Content
// @Accept json
// @Produce json
// @Param gid path string true "游戏 ID"
// @Param body body dto.LocationRequest true "场景信息"
// @Success 201 {object} dto.Response[entity.Location]
// @Router /v1/games/{gid}/locations [post]
func (h *ContentHandler) CreateLocation(c *gin.Context) {
	var req dto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	location, err := h.games.CreateLocation(c.Request.Context(), c.GetString("user_id"), c.Param("gid"), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Created(c, location)
}

// UpdateLocation 更新场景
// @Summary 更新场景
// @Tags Content
// @Accept json
// @Produce json
// @Param lid path string true "场景 ID"
// @Param body body dto.LocationRequest true "场景信息"
// @Success 200 {object} dto.Response[entity.Location]
// @Router /v1/locations/{lid} [put]
func (h *ContentHandler) UpdateLocation(c *gin.Context) {
	var req dto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	location, err := h.games.UpdateLocation(c.Request.Context(), c.GetString("user_id"), c.Param("lid"), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, location)
}

// DeleteLocation 删除场景
// @Summary 删除场景
// @Tags Content
// @Param lid path string true "场景 ID"
// @Success 204
// @Router /v1/locations/{lid} [delete]
func (h *ContentHandler) DeleteLocation(c *gin.Context) {
	if err := h.games.DeleteLocation(c.Request.Context(), c.GetString("user_id"), c.Param("lid")); err != nil {
		dto.Fail(c, err)
		return
	}

	dto.NoContent(c)
}

// ListImages 图片列表
// @Summary 游戏图片列表
// @Tags Content
// @Produce json
// @Param gid path string true "游戏 ID"
// @Success 200 {object} dto.Response[[]entity.GameImage]
// @Router /v1/games/{gid}/images [get]
func (h *ContentHandler) ListImages(c *gin.Context) {
	images, err := h.games.ListImages(c.Request.Context(), c.GetString("user_id"), c.Param("gid"))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, images)
}

// GenerateImage 追加生成图片
// @Summary 生成游戏图片
// @Tags Content
// @Accept json
// @Produce json
// @Param gid path string true "游戏 ID"
// @Param body body dto.GenerateImageRequest true "生成参数"
// @Success 201 {object} dto.Response[entity.GameImage]
// @Router /v1/games/{gid}/images [post]
func (h *ContentHandler) GenerateImage(c *gin.Context) {
	var req dto.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	image, err := h.games.GenerateImage(c.Request.Context(), c.GetString("user_id"), c.Param("gid"),
		req.Prompt, entity.ImageType(req.ImageType))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Created(c, image)
}
