package tips

import (
	"errors"
	"net/http"

	"github.com/i7even3/fansnap/db"
	"github.com/i7even3/fansnap/models"
	"github.com/i7even3/fansnap/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Send a tip
// @Description Send a tip from the authenticated user to another user
// @Tags tips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tip body models.TipCreate true "Tip information"
// @Success 201 {object} models.Tip
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Recipient not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /tips [post]
func SendTip(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.TipCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if *input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}

	if input.RecipientID == userID.(string) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot tip yourself"})
		return
	}

	var recipient models.User
	if err := db.DB.Where("id = ?", input.RecipientID).First(&recipient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error verifying recipient: " + err.Error()})
		}
		return
	}

	tip := models.Tip{
		SenderID:    userID.(string),
		RecipientID: input.RecipientID,
		Amount:      *input.Amount,
	}

	if err := db.DB.Create(&tip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating tip: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Tip sent")

	c.JSON(http.StatusCreated, tip)
}

// @Summary List received tips
// @Description Retrieve all tips received by the authenticated user
// @Tags tips
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Tip
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /tips/received [get]
func GetReceivedTips(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var receivedTips []models.Tip
	result := db.DB.Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Find(&receivedTips)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving tips: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, receivedTips)
}
