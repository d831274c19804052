package subscriptions

import (
	"net/http"

	"github.com/i7even3/fansnap/db"
	"github.com/i7even3/fansnap/models"
	"github.com/i7even3/fansnap/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Subscribe to a creator
// @Description Create a new active subscription from the authenticated user to a creator
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subscription body models.SubscriptionCreate true "Subscription information"
// @Success 201 {object} models.Subscription
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /subscriptions [post]
func Subscribe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.SubscriptionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.CreatorID == userID.(string) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot subscribe to yourself"})
		return
	}

	plan := input.Plan
	if plan == "" {
		plan = "monthly"
	}

	// A new row every time: historical records for the same pair coexist
	subscription := models.Subscription{
		SubscriberID: userID.(string),
		CreatorID:    input.CreatorID,
		Plan:         plan,
		Status:       models.SubscriptionActive,
	}

	if err := db.DB.Create(&subscription).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating subscription: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Subscription created")

	c.JSON(http.StatusCreated, subscription)
}

// @Summary Check subscription status
// @Description Check whether the authenticated user has an active subscription to a creator
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param creatorId path string true "Creator ID"
// @Success 200 {object} map[string]bool "active: whether an active subscription exists"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /subscriptions/status/{creatorId} [get]
func GetSubscriptionStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	creatorID := c.Param("creatorId")

	var count int64
	db.DB.Model(&models.Subscription{}).
		Where("subscriber_id = ? AND creator_id = ? AND status = ?", userID, creatorID, models.SubscriptionActive).
		Count(&count)

	c.JSON(http.StatusOK, gin.H{"active": count > 0})
}

// @Summary List the authenticated user's subscriptions
// @Description Retrieve all subscription records of the authenticated user, any status
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Subscription
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /subscriptions [get]
func GetUserSubscriptions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var subscriptions []models.Subscription
	result := db.DB.Where("subscriber_id = ?", userID).
		Order("created_at DESC").
		Find(&subscriptions)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving subscriptions: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}
