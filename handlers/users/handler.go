package users

import (
	"errors"
	"net/http"

	"github.com/i7even3/fansnap/db"
	"github.com/i7even3/fansnap/models"
	"github.com/i7even3/fansnap/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get a user by ID
// @Description Retrieve a user's public record by its ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/{id} [get]
func GetUserByID(c *gin.Context) {
	var user models.User
	userID := c.Param("id")

	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Get a user by username
// @Description Retrieve a user's public record by its username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/username/{username} [get]
func GetUserByUsername(c *gin.Context) {
	var user models.User
	username := c.Param("username")

	if err := db.DB.Where("user_name = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Get the authenticated user
// @Description Retrieve the record of the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/me [get]
func GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Update the authenticated user's profile
// @Description Merge the provided profile fields into the user's profile. Unknown or mistyped fields are ignored.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body map[string]interface{} true "Profile fields (bio, profilePicture, banner, socialLinks, subscriptionPlans)"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string "error: Invalid request body"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users/profile [put]
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving user: " + err.Error()})
		}
		return
	}

	mergeProfileFields(&user, fields)

	if err := db.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(user.ID, "Profile updated")

	c.JSON(http.StatusOK, user)
}

// mergeProfileFields applies only recognized, correctly-typed fields.
// Anything else is dropped without an error, which existing clients rely on.
func mergeProfileFields(user *models.User, fields map[string]interface{}) {
	if v, ok := fields["bio"].(string); ok {
		user.Bio = v
	}
	if v, ok := fields["profilePicture"].(string); ok {
		user.ProfilePicture = v
	}
	if v, ok := fields["banner"].(string); ok {
		user.Banner = v
	}
	if raw, ok := fields["socialLinks"].(map[string]interface{}); ok {
		links := make(map[string]string, len(raw))
		valid := true
		for label, value := range raw {
			url, ok := value.(string)
			if !ok {
				valid = false
				break
			}
			links[label] = url
		}
		if valid {
			user.SocialLinks = links
		}
	}
	if raw, ok := fields["subscriptionPlans"].([]interface{}); ok {
		plans := make([]string, 0, len(raw))
		valid := true
		for _, value := range raw {
			plan, ok := value.(string)
			if !ok {
				valid = false
				break
			}
			plans = append(plans, plan)
		}
		if valid {
			user.SubscriptionPlans = plans
		}
	}
}

// @Summary Upload a profile picture
// @Description Upload the authenticated user's profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param picture formData file true "Profile picture"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string "error: Picture is required"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users/profile/picture [post]
func UploadProfilePicture(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	file, err := c.FormFile("picture")
	if err != nil || file == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Picture is required"})
		return
	}

	imageURL, err := utils.UploadImage(file, "profile_pictures", "profile")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading picture: " + err.Error()})
		return
	}

	user.ProfilePicture = imageURL
	if err := db.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
