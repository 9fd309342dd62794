package api

import (
	"Mediahub/internal/api/middleware"
	"Mediahub/internal/model"
	"Mediahub/internal/pkg/logger"
	"Mediahub/internal/pkg/security"
	"Mediahub/internal/repository"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, tokenManager *security.TokenManager, userRepo repository.UserRepo) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.Trace())
	r.Use(middleware.Cors())
	logger.SetupGin(r)

	auth := middleware.Auth(tokenManager, userRepo)
	adminOnly := middleware.CheckPermission(model.PermissionAdmin)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(auth)
			{
				loggedGroup.POST("/logout", group.AuthHandler.Logout)
				loggedGroup.POST("/refresh", group.AuthHandler.Refresh)
				loggedGroup.GET("/me", group.UserHandler.Me)
			}
		}

		userGroup := apiGroup.Group("/users")
		userGroup.Use(auth)
		{
			userGroup.GET("/me", group.UserHandler.Me)
			userGroup.PUT("/me/password", group.UserHandler.ChangePassword)

			// 需要 admin 权限
			adminGroup := userGroup.Group("")
			adminGroup.Use(adminOnly)
			{
				adminGroup.GET("", group.UserHandler.ListUsers)
				adminGroup.GET("/:user_id", group.UserHandler.GetUser)
				adminGroup.PUT("/:user_id", group.UserHandler.UpdateUser)
				adminGroup.DELETE("/:user_id", group.UserHandler.DeleteUser)
			}
		}

		categoryGroup := apiGroup.Group("/categories")
		{
			categoryGroup.GET("", group.CategoryHandler.ListCategories)
			categoryGroup.GET("/active", group.CategoryHandler.ListActiveCategories)
			categoryGroup.GET("/:category_id", group.CategoryHandler.GetCategory)
			categoryGroup.GET("/:category_id/stats", group.CategoryHandler.GetCategoryStats)

			adminGroup := categoryGroup.Group("")
			adminGroup.Use(auth, adminOnly)
			{
				adminGroup.POST("", group.CategoryHandler.CreateCategory)
				adminGroup.PUT("/:category_id", group.CategoryHandler.UpdateCategory)
				adminGroup.DELETE("/:category_id", group.CategoryHandler.DeleteCategory)
				adminGroup.PATCH("/:category_id/toggle", group.CategoryHandler.ToggleCategory)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.GET("/current-month", group.MediaHandler.CurrentMonth)
			mediaGroup.GET("/:media_id", group.MediaHandler.GetMedia)
			mediaGroup.GET("/:media_id/files", group.MediaHandler.GetMediaFiles)

			loggedGroup := mediaGroup.Group("")
			loggedGroup.Use(auth)
			{
				loggedGroup.POST("/upload", group.MediaHandler.Upload)
			}
		}
	}

	return r
}
