package posts

import (
	"net/http"

	"github.com/i7even3/fansnap/db"
	"github.com/i7even3/fansnap/models"
	"github.com/i7even3/fansnap/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Publish a post
// @Description Publish a new post for the authenticated creator
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body models.PostCreate true "Post information"
// @Success 201 {object} models.Post
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts [post]
func CreatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.PostCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	post := models.Post{
		CreatorID:      userID.(string),
		Content:        input.Content,
		Type:           input.Type,
		Price:          input.Price,
		SubscriberOnly: input.SubscriberOnly,
		Tags:           input.Tags,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating post: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Post published")

	c.JSON(http.StatusCreated, post)
}

// @Summary Get a creator's posts
// @Description Retrieve a creator's posts. Subscriber-only posts are included only for active subscribers of that creator.
// @Tags posts
// @Produce json
// @Param id path string true "Creator ID"
// @Success 200 {array} models.Post
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/creator/{id} [get]
func GetCreatorPosts(c *gin.Context) {
	creatorID := c.Param("id")

	requesterID := ""
	if userID, exists := c.Get("user_id"); exists {
		requesterID, _ = userID.(string)
	}

	query := db.DB.Where("creator_id = ?", creatorID).Order("created_at DESC")
	if !hasActiveSubscription(requesterID, creatorID) && requesterID != creatorID {
		query = query.Where("subscriber_only = ?", false)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving posts: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// @Summary Get a post by ID
// @Description Retrieve a post. Subscriber-only posts are hidden from non-subscribers.
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} map[string]string "error: Post not found"
// @Router /posts/{id} [get]
func GetPostByID(c *gin.Context) {
	var post models.Post
	postID := c.Param("id")

	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.SubscriberOnly {
		requesterID := ""
		if userID, exists := c.Get("user_id"); exists {
			requesterID, _ = userID.(string)
		}

		role, _ := c.Get("role")
		isAdmin := role == string(models.AdminRole)

		if requesterID != post.CreatorID && !isAdmin && !hasActiveSubscription(requesterID, post.CreatorID) {
			// Hidden posts are indistinguishable from absent ones
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
	}

	c.JSON(http.StatusOK, post)
}

// @Summary Delete a post
// @Description Permanently delete a post (admin only)
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Post deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id} [delete]
func DeletePost(c *gin.Context) {
	var post models.Post
	postID := c.Param("id")

	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting post: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// hasActiveSubscription is the gating predicate: at least one ACTIVE
// subscription row for the (subscriber, creator) pair.
func hasActiveSubscription(subscriberID string, creatorID string) bool {
	if subscriberID == "" {
		return false
	}

	var count int64
	db.DB.Model(&models.Subscription{}).
		Where("subscriber_id = ? AND creator_id = ? AND status = ?", subscriberID, creatorID, models.SubscriptionActive).
		Count(&count)

	return count > 0
}
