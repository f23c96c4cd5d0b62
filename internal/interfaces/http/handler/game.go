package handler

import (
	"github.com/gin-gonic/gin"

	"gameforge-api/internal/application/game"
	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/domain/repository"
	"gameforge-api/internal/interfaces/http/dto"
)

// GameHandler 游戏处理器
type GameHandler struct {
	games *game.Service
}

// NewGameHandler 创建游戏处理器
func NewGameHandler(games *game.Service) *GameHandler {
	return &GameHandler{games: games}
}

// CreateGame 创建游戏
// @Summary 创建游戏设计文档
// @Description 按类型与氛围逐字段生成故事、角色与场景
// @Tags Game
// @Accept json
// @Produce json
// @Param body body dto.CreateGameRequest true "创建参数"
// @Success 201 {object} dto.Response[entity.Game]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	created, err := h.games.CreateGame(c.Request.Context(), c.GetString("user_id"), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Created(c, created)
}

// CreateRandomGame 一键生成随机游戏
// @Summary 随机生成游戏
// @Tags Game
// @Produce json
// @Success 201 {object} dto.Response[entity.Game]
// @Router /v1/games/random [post]
func (h *GameHandler) CreateRandomGame(c *gin.Context) {
	created, err := h.games.CreateRandomGame(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Created(c, created)
}

// GetGame 获取游戏详情
// @Summary 游戏详情
// @Tags Game
// @Produce json
// @Param gid path string true "游戏 ID"
// @Success 200 {object} dto.Response[entity.Game]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/games/{gid} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	g, err := h.games.GetGame(c.Request.Context(), c.GetString("user_id"), c.Param("gid"))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, g)
}

// ListGames 列出公开游戏
// @Summary 公开游戏列表
// @Tags Game
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param genre query string false "游戏类型过滤"
// @Param ambiance query string false "游戏氛围过滤"
// @Success 200 {object} dto.Response[[]entity.Game]
// @Router /v1/games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	var query dto.ListGamesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c, "invalid query: "+err.Error())
		return
	}

	result, err := h.games.ListPublicGames(c.Request.Context(),
		entity.GameGenre(query.Genre), entity.GameAmbiance(query.Ambiance),
		repository.NewPagination(query.Page, query.PageSize))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.SuccessWithPage(c, result.Items, dto.NewPageMeta(result))
}

// ListMyGames 列出当前用户创建的游戏
// @Summary 我的游戏列表
// @Tags Game
// @Produce json
// @Success 200 {object} dto.Response[[]entity.Game]
// @Router /v1/games/mine [get]
func (h *GameHandler) ListMyGames(c *gin.Context) {
	var query dto.ListGamesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c, "invalid query: "+err.Error())
		return
	}

	result, err := h.games.ListMyGames(c.Request.Context(), c.GetString("user_id"),
		repository.NewPagination(query.Page, query.PageSize))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.SuccessWithPage(c, result.Items, dto.NewPageMeta(result))
}

// UpdateGame 更新游戏
// @Summary 更新游戏
// @Tags Game
// @Accept json
// @Produce json
// @Param gid path string true "游戏 ID"
// @Param body body dto.UpdateGameRequest true "更新参数"
// @Success 200 {object} dto.Response[entity.Game]
// @Failure 403 {object} dto.ErrorResponse
// @Router /v1/games/{gid} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	var req dto.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.games.UpdateGame(c.Request.Context(), c.GetString("user_id"), c.Param("gid"), req.ToUpdate())
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, updated)
}

// DeleteGame 删除游戏
// @Summary 删除游戏
// @Tags Game
// @Param gid path string true "游戏 ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Router /v1/games/{gid} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	if err := h.games.DeleteGame(c.Request.Context(), c.GetString("user_id"), c.Param("gid")); err != nil {
		dto.Fail(c, err)
		return
	}

	dto.NoContent(c)
}

// SimilarGames 相似游戏检索
// @Summary 相似游戏
// @Description 基于故事前提向量检索相似的公开游戏
// @Tags Game
// @Produce json
// @Param gid path string true "游戏 ID"
// @Success 200 {object} dto.Response[[]dto.SimilarGameDTO]
// @Router /v1/games/{gid}/similar [get]
func (h *GameHandler) SimilarGames(c *gin.Context) {
	results, err := h.games.SimilarGames(c.Request.Context(), c.GetString("user_id"), c.Param("gid"), 0)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, dto.ToSimilarGameDTOs(results))
}

// ToggleFavorite 切换收藏状态
// @Summary 收藏/取消收藏
// @Tags Game
// @Produce json
// @Param gid path string true "游戏 ID"
// @Success 200 {object} dto.Response[gin.H]
// @Router /v1/games/{gid}/favorite [post]
func (h *GameHandler) ToggleFavorite(c *gin.Context) {
	favorited, err := h.games.ToggleFavorite(c.Request.Context(), c.GetString("user_id"), c.Param("gid"))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, gin.H{"favorited": favorited})
}

// ListFavorites 收藏列表
// @Summary 我的收藏
// @Tags Game
// @Produce json
// @Success 200 {object} dto.Response[[]entity.Game]
// @Router /v1/games/favorites [get]
func (h *GameHandler) ListFavorites(c *gin.Context) {
	var query dto.ListGamesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c, "invalid query: "+err.Error())
		return
	}

	result, err := h.games.ListFavorites(c.Request.Context(), c.GetString("user_id"),
		repository.NewPagination(query.Page, query.PageSize))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.SuccessWithPage(c, result.Items, dto.NewPageMeta(result))
}
