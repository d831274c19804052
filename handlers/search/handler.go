package search

import (
	"net/http"

	"github.com/i7even3/fansnap/db"
	"github.com/i7even3/fansnap/models"

	"github.com/gin-gonic/gin"
)

// @Summary Search users
// @Description Case-insensitive substring search over usernames and bios
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} models.User
// @Failure 400 {object} map[string]string "error: Query is required"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /search/users [get]
func SearchUsers(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	pattern := "%" + q + "%"

	var users []models.User
	result := db.DB.Where("user_name ILIKE ? OR bio ILIKE ?", pattern, pattern).
		Find(&users)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching users: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Search posts
// @Description Case-insensitive substring search over post content and tags
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} models.Post
// @Failure 400 {object} map[string]string "error: Query is required"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /search/posts [get]
func SearchPosts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	pattern := "%" + q + "%"

	var posts []models.Post
	result := db.DB.Where("content ILIKE ? OR tags::text ILIKE ?", pattern, pattern).
		Find(&posts)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching posts: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}
