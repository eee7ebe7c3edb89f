package routes

import (
	"context"

	"dad-circles-backend/internal/api/handlers"
	"dad-circles-backend/internal/api/middleware"
	"dad-circles-backend/internal/app"
	"dad-circles-backend/internal/auth"
	"dad-circles-backend/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, a *app.App, tokens auth.TokenValidator) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	healthHandler := handlers.NewHealthHandler(db)
	if a.Redis != nil {
		healthHandler.WithCheck("redis", func(ctx context.Context) error {
			return a.Redis.Ping(ctx).Err()
		})
	}
	memberHandler := handlers.NewMemberHandler(a.Members)
	groupHandler := handlers.NewGroupHandler(a.Groups)
	matchingHandler := handlers.NewMatchingHandler(a.Matching)
	authMiddleware := auth.NewAuthMiddleware(tokens)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	RegisterPublic(v1, memberHandler, groupHandler)
	RegisterAdmin(v1.Group("/admin", authMiddleware.RequireAdmin()), groupHandler, matchingHandler)

	return router
}

// RegisterPublic mounts the member intake and group read routes
func RegisterPublic(rg *gin.RouterGroup, members *handlers.MemberHandler, groups *handlers.GroupHandler) {
	memberRoutes := rg.Group("/members")
	{
		memberRoutes.POST("", members.CreateMember)
		memberRoutes.GET("/unmatched", members.ListUnmatched)
		memberRoutes.GET("/:id", members.GetMember)
	}

	groupRoutes := rg.Group("/groups")
	{
		groupRoutes.GET("", groups.ListGroups)
		groupRoutes.GET("/:id", groups.GetGroup)
	}
}

// RegisterAdmin mounts the operator routes; rg must already require an admin token
func RegisterAdmin(rg *gin.RouterGroup, groups *handlers.GroupHandler, matching *handlers.MatchingHandler) {
	rg.POST("/matching/run", matching.RunPass)
	rg.POST("/groups/:id/approve", groups.ApproveGroup)
	rg.DELETE("/groups/:id", groups.DeleteGroup)
}
