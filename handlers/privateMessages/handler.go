package privateMessages

import (
	"errors"
	"net/http"

	"github.com/i7even3/fansnap/config"
	"github.com/i7even3/fansnap/db"
	"github.com/i7even3/fansnap/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Send a private message
// @Description Send a private message from the authenticated user to another user
// @Tags private-messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body models.PrivateMessageCreate true "Message information"
// @Success 201 {object} models.PrivateMessage "Created message"
// @Failure 400 {object} map[string]string "error: Invalid request data"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Recipient not found"
// @Failure 500 {object} map[string]string "error: Error creating message"
// @Router /private-messages [post]
func SendMessage(c *gin.Context) {
	senderID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var messageCreate models.PrivateMessageCreate
	if err := c.ShouldBindJSON(&messageCreate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	if config.StrictValidation() && messageCreate.RecipientID == senderID.(string) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot message yourself"})
		return
	}

	var recipient models.User
	if result := db.DB.Where("id = ?", messageCreate.RecipientID).First(&recipient); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error verifying recipient: " + result.Error.Error()})
		}
		return
	}

	privateMessage := models.PrivateMessage{
		SenderID:    senderID.(string),
		RecipientID: messageCreate.RecipientID,
		Content:     messageCreate.Content,
	}

	if result := db.DB.Create(&privateMessage); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating message: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusCreated, privateMessage)
}

// @Summary Get conversation partners
// @Description Get the distinct users the authenticated user has exchanged messages with
// @Tags private-messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User "Conversation partners"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error retrieving conversations"
// @Router /private-messages/conversations [get]
func GetConversations(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var messages []models.PrivateMessage
	result := db.DB.Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Find(&messages)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving conversations: " + result.Error.Error()})
		return
	}

	seen := make(map[string]bool)
	partnerIDs := []string{}
	for _, msg := range messages {
		partnerID := msg.SenderID
		if msg.SenderID == userID.(string) {
			partnerID = msg.RecipientID
		}
		if !seen[partnerID] {
			seen[partnerID] = true
			partnerIDs = append(partnerIDs, partnerID)
		}
	}

	partners := []models.User{}
	if len(partnerIDs) > 0 {
		if err := db.DB.Where("id IN ?", partnerIDs).Find(&partners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving partners: " + err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, partners)
}

// @Summary Get a message thread
// @Description Get all messages between the authenticated user and another user, oldest first
// @Tags private-messages
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Other user ID"
// @Success 200 {array} models.PrivateMessage "Thread messages"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error retrieving messages"
// @Router /private-messages/thread/{userId} [get]
func GetThread(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	otherID := c.Param("userId")

	var messages []models.PrivateMessage
	result := db.DB.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userID, otherID, otherID, userID,
	).Order("created_at ASC").Find(&messages)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving messages: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}
