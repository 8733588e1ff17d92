package app

import (
	"lexilearn_backend/docs"
	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/middleware"
	"lexilearn_backend/internal/model"

	"lexilearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerUserRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 词表浏览允许游客访问，登录用户走同一套接口
	vocabulary := router.Group("/api/vocabulary")
	vocabulary.Use(middleware.TryAuthMiddleware(a.Config))
	{
		vocabulary.GET("", c.vocabulary.GetCorpus)
		vocabulary.GET("/levels", c.vocabulary.GetLevels)
		vocabulary.GET("/groups", c.vocabulary.GetGroups)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)

	rg.GET("/progress", c.progress.List)
	rg.PUT("/progress/:id", c.progress.Update)

	rg.GET("/favorites", c.favorite.List)
	rg.POST("/favorites/:id", c.favorite.Add)
	rg.DELETE("/favorites/:id", c.favorite.Remove)

	rg.GET("/statistics", c.statistics.Overview)

	// 测试会话
	sessions := rg.Group("/test/sessions")
	{
		sessions.POST("", c.session.Start)
		sessions.GET("/:id", c.session.Get)
		sessions.POST("/:id/flip", c.session.Flip)
		sessions.POST("/:id/answer", c.session.Answer)
		sessions.DELETE("/:id", c.session.Abandon)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/vocabulary/import", c.vocabulary.Import)
	}
}
