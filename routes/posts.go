package routes

import (
	"github.com/i7even3/fansnap/handlers/posts"
	"github.com/i7even3/fansnap/middleware"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(r *gin.Engine) {
	// Public routes, identity attached when a token is present
	r.GET("/posts/creator/:id", middleware.OptionalJWTAuth(), posts.GetCreatorPosts)
	r.GET("/posts/:id", middleware.OptionalJWTAuth(), posts.GetPostByID)

	// Protected routes
	postsRoutes := r.Group("/posts")
	postsRoutes.Use(middleware.JWTAuth())
	{
		postsRoutes.POST("", posts.CreatePost)
	}

	// Admin routes
	adminRoutes := r.Group("/posts")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.DELETE("/:id", posts.DeletePost)
	}
}
