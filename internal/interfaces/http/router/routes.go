package router

import (
	"github.com/gin-gonic/gin"

	"gameforge-api/internal/interfaces/http/middleware"
	"gameforge-api/pkg/utils"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(v1 *gin.RouterGroup, jwtManager *utils.JWTManager, h Handlers, rateLimit gin.HandlerFunc) {
	requireAuth := middleware.Auth(jwtManager)
	optionalAuth := middleware.OptionalAuth(jwtManager)

	if rateLimit == nil {
		rateLimit = func(c *gin.Context) { c.Next() }
	}

	// 认证管理
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.GET("/me", requireAuth, h.Auth.Me)
	}

	// 游戏管理
	games := v1.Group("/games")
	{
		// 公开浏览（匿名可见公开游戏）
		games.GET("", optionalAuth, h.Game.ListGames)

		// 生成类接口走限流
		games.POST("", requireAuth, rateLimit, h.Game.CreateGame)
		games.POST("/random", requireAuth, rateLimit, h.Game.CreateRandomGame)

		games.GET("/mine", requireAuth, h.Game.ListMyGames)
		games.GET("/favorites", requireAuth, h.Game.ListFavorites)

		games.GET("/:gid", optionalAuth, h.Game.GetGame)
		games.PUT("/:gid", requireAuth, h.Game.UpdateGame)
		games.DELETE("/:gid", requireAuth, h.Game.DeleteGame)
		games.GET("/:gid/similar", optionalAuth, h.Game.SimilarGames)
		games.POST("/:gid/favorite", requireAuth, h.Game.ToggleFavorite)

		// 游戏下的角色
		games.GET("/:gid/characters", optionalAuth, h.Content.ListCharacters)
		games.POST("/:gid/characters", requireAuth, h.Content.CreateCharacter)

		// 游戏下的场景
		games.GET("/:gid/locations", optionalAuth, h.Content.ListLocations)
		games.POST("/:gid/locations", requireAuth, h.Content.CreateLocation)

		// 游戏下的图片
		games.GET("/:gid/images", optionalAuth, h.Content.ListImages)
		games.POST("/:gid/images", requireAuth, rateLimit, h.Content.GenerateImage)
	}

	// 角色管理
	characters := v1.Group("/characters", requireAuth)
	{
		characters.PUT("/:cid", h.Content.UpdateCharacter)
		characters.DELETE("/:cid", h.Content.DeleteCharacter)
	}

	// 场景管理
	locations := v1.Group("/locations", requireAuth)
	{
		locations.PUT("/:lid", h.Content.UpdateLocation)
		locations.DELETE("/:lid", h.Content.DeleteLocation)
	}

	// AI 设置
	settings := v1.Group("/settings", requireAuth)
	{
		settings.GET("/me", h.Settings.GetUserSettings)
		settings.PUT("/me", h.Settings.UpdateUserSettings)

		settings.GET("/global", middleware.RequireAdmin(), h.Settings.GetGlobalSettings)
		settings.PUT("/global", middleware.RequireAdmin(), h.Settings.UpdateGlobalSettings)
	}
}
