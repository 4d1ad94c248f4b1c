package routes

import (
	"crudboard_backend/internal/config"
	"crudboard_backend/internal/handlers"
	"crudboard_backend/internal/middleware"
	"crudboard_backend/internal/models"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "crudboard_backend/docs"
)

// RegisterRoutes registers every HTTP route.
func RegisterRoutes(
	ginRouter *gin.Engine,
	cfg *config.Config,
	appHandlers *handlers.AppHandlers,
) {
	secret := []byte(cfg.JWT.Secret)

	api := ginRouter.Group("/api")
	{
		// Public user routes
		users := api.Group("/users")
		{
			users.POST("/signup", appHandlers.UserHandler.Signup)
			users.GET("/verify", appHandlers.UserHandler.VerifyEmail)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", appHandlers.AuthHandler.Login)

			protected := auth.Group("")
			protected.Use(middleware.AuthMiddleware(secret))
			{
				protected.GET("/protected", appHandlers.AuthHandler.Protected)
			}

			admin := auth.Group("/admin")
			admin.Use(middleware.AuthMiddleware(secret))
			admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
			{
				admin.POST("/create-user", appHandlers.UserHandler.AdminCreateUser)
				admin.GET("/users", appHandlers.UserHandler.AdminListUsers)
				admin.GET("/users/:id", appHandlers.UserHandler.AdminGetUser)
				admin.DELETE("/users/:id", appHandlers.UserHandler.AdminDeleteUser)
			}
		}

		// Posts and comments are protected resources; the auth
		// middleware applies to every route uniformly.
		posts := api.Group("/posts")
		posts.Use(middleware.AuthMiddleware(secret))
		{
			posts.POST("", appHandlers.PostHandler.CreatePost)
			posts.GET("", appHandlers.PostHandler.ListPosts)
			posts.GET("/:id", appHandlers.PostHandler.GetPost)
			posts.PUT("/:id", appHandlers.PostHandler.UpdatePost)
			posts.DELETE("/:id", appHandlers.PostHandler.DeletePost)

			posts.POST("/:id/comments", appHandlers.CommentHandler.CreateComment)
			posts.GET("/:id/comments", appHandlers.CommentHandler.ListComments)
			posts.DELETE("/:id/comments/:commentId", appHandlers.CommentHandler.DeleteComment)
		}

		// Swagger UI
		api.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
