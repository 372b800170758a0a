package route

import (
	"mediavault/backend/api/handler"
	"mediavault/backend/api/middleware"
	"mediavault/backend/service"

	"github.com/gin-gonic/gin"
)

func SetApiRouter(router *gin.Engine, auth *service.AuthService, users *handler.UserHandler, files *handler.FileHandler) {
	apiRouter := router.Group("/api")
	{
		// Public routes (no authentication required)
		apiRouter.POST("/register", users.Register)
		apiRouter.POST("/login", users.Login)

		// File routes, all behind bearer-token auth
		fileRoutes := apiRouter.Group("/")
		fileRoutes.Use(middleware.JWTAuth(auth))
		{
			fileRoutes.GET("/files", files.List)
			fileRoutes.GET("/files/:id", files.Get)
			fileRoutes.POST("/upload", files.Upload)
			fileRoutes.DELETE("/files/:id", files.Delete)
		}
	}
}
