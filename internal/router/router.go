package router

import (
	"shop-api/internal/config"
	"shop-api/internal/handler"
	"shop-api/internal/middleware"
	"shop-api/internal/service"
	"shop-api/internal/token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and registers all routes.
// The middleware order on every protected route is fixed:
// authenticate -> authorize (admin/fresh) -> bind input -> execute -> serialize.
func SetupRouter(cfg *config.Config, db *gorm.DB, tokens *token.Service, notifier service.RegistrationNotifier) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	userHandler := handler.NewUserHandler(service.NewUserService(db, tokens, notifier), tokens)
	tagHandler := handler.NewTagHandler(service.NewTagRegistry(db))
	storeHandler := handler.NewStoreHandler(service.NewStoreService(db))
	itemHandler := handler.NewItemHandler(service.NewItemService(db))
	exportHandler := handler.NewExportHandler(db)

	// 无需鉴权
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.POST("/refresh", middleware.RefreshAuth(tokens), userHandler.Refresh)

	// 需要 access token
	authed := r.Group("")
	authed.Use(middleware.Auth(tokens))

	authed.POST("/logout", userHandler.Logout)

	authed.POST("/stores", storeHandler.Create)
	authed.GET("/stores", storeHandler.List)
	authed.GET("/stores/:store_id", storeHandler.Get)

	authed.GET("/stores/:store_id/tags", tagHandler.ListForStore)
	authed.POST("/stores/:store_id/tags", tagHandler.Create)
	authed.POST("/stores/:store_id/items", itemHandler.Create)

	authed.GET("/items", itemHandler.List)
	authed.GET("/items/:item_id", itemHandler.Get)
	authed.PUT("/items/:item_id", itemHandler.Update)
	authed.DELETE("/items/:item_id", itemHandler.Delete)
	authed.POST("/items/:item_id/tags/:tag_id", tagHandler.Link)
	authed.DELETE("/items/:item_id/tags/:tag_id", tagHandler.Unlink)

	authed.GET("/tags", tagHandler.ListAll)
	authed.GET("/tags/:tag_id", tagHandler.Get)

	// 敏感操作要求 fresh token（刷新得到的 token 不行）
	fresh := authed.Group("")
	fresh.Use(middleware.RequireFresh())
	fresh.DELETE("/tags/:tag_id", tagHandler.Delete)

	// 管理员接口
	admin := authed.Group("")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/users/:id", userHandler.Get)
	admin.GET("/export/tags.csv", exportHandler.TagsCSV)
	admin.GET("/export/tags.xlsx", exportHandler.TagsXLSX)

	adminFresh := admin.Group("")
	adminFresh.Use(middleware.RequireFresh())
	adminFresh.DELETE("/users/:id", userHandler.Delete)
	adminFresh.DELETE("/stores/:store_id", storeHandler.Delete)

	return r
}
