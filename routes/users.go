package routes

import (
	"github.com/i7even3/fansnap/handlers/users"
	"github.com/i7even3/fansnap/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	// Public routes
	r.GET("/users/username/:username", users.GetUserByUsername)

	usersRoutes := r.Group("/users")
	usersRoutes.Use(middleware.JWTAuth())
	{
		usersRoutes.GET("/me", users.GetMe)
		usersRoutes.PUT("/profile", users.UpdateProfile)
		usersRoutes.POST("/profile/picture", users.UploadProfilePicture)
	}

	// Registered after /users/me so the param route does not shadow it
	r.GET("/users/:id", users.GetUserByID)
}
