package routes

import (
	"github.com/i7even3/fansnap/handlers/search"

	"github.com/gin-gonic/gin"
)

func SearchRoutes(r *gin.Engine) {
	r.GET("/search/users", search.SearchUsers)
	r.GET("/search/posts", search.SearchPosts)
}
