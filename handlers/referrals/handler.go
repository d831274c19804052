package referrals

import (
	"errors"
	"net/http"
	"strings"

	"github.com/i7even3/fansnap/config"
	"github.com/i7even3/fansnap/db"
	"github.com/i7even3/fansnap/models"
	"github.com/i7even3/fansnap/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultCommission = 0.2

// @Summary Create a referral code
// @Description Create a referral code for a creator, owned by the authenticated affiliate
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param referral body models.ReferralCreate true "Referral information"
// @Success 201 {object} models.Referral
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 409 {object} map[string]string "error: Code already exists"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /referrals [post]
func CreateCode(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.ReferralCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	commission := defaultCommission
	if input.Commission != nil {
		commission = *input.Commission
	}

	if config.StrictValidation() && (commission < 0 || commission > 1) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Commission must be between 0 and 1"})
		return
	}

	code := input.Code
	if code == "" {
		code = strings.ToUpper(uuid.NewString()[:8])
	}

	var existing models.Referral
	if err := db.DB.Where("code = ?", code).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This referral code already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error when checking the code existence"})
		return
	}

	referral := models.Referral{
		CreatorID:   input.CreatorID,
		AffiliateID: userID.(string),
		Code:        code,
		Commission:  commission,
	}

	if err := db.DB.Create(&referral).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating referral: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Referral code created")

	c.JSON(http.StatusCreated, referral)
}

// @Summary Get a referral by code
// @Description Retrieve a referral record by its code
// @Tags referrals
// @Produce json
// @Param code path string true "Referral code"
// @Success 200 {object} models.Referral
// @Failure 404 {object} map[string]string "error: Referral not found"
// @Router /referrals/{code} [get]
func GetByCode(c *gin.Context) {
	var referral models.Referral
	code := c.Param("code")

	if err := db.DB.Where("code = ?", code).First(&referral).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Referral not found"})
		return
	}

	c.JSON(http.StatusOK, referral)
}

// @Summary Record a signup
// @Description Increment the signup counter of a referral code
// @Tags referrals
// @Produce json
// @Param code path string true "Referral code"
// @Success 200 {object} models.Referral
// @Failure 404 {object} map[string]string "error: Referral not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /referrals/{code}/signup [post]
func RecordSignup(c *gin.Context) {
	var referral models.Referral
	code := c.Param("code")

	if err := db.DB.Where("code = ?", code).First(&referral).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Referral not found"})
		return
	}

	// Increment in SQL so concurrent signups never lose updates
	if err := db.DB.Model(&models.Referral{}).
		Where("code = ?", code).
		UpdateColumn("signups", gorm.Expr("signups + ?", 1)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording signup: " + err.Error()})
		return
	}

	if err := db.DB.Where("code = ?", code).First(&referral).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving referral: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, referral)
}

// @Summary Record an earning
// @Description Add amount times commission to a referral code's earnings and return the updated record
// @Tags referrals
// @Accept json
// @Produce json
// @Param code path string true "Referral code"
// @Param earning body models.ReferralEarning true "Earning event"
// @Success 200 {object} models.Referral
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Referral not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /referrals/{code}/earnings [post]
func RecordEarning(c *gin.Context) {
	var referral models.Referral
	code := c.Param("code")

	if err := db.DB.Where("code = ?", code).First(&referral).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Referral not found"})
		return
	}

	var input models.ReferralEarning
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// The commission in effect at recording time applies to this event.
	// The addition runs in SQL so concurrent earnings serialize per row.
	delta := *input.Amount * referral.Commission
	if err := db.DB.Model(&models.Referral{}).
		Where("code = ?", code).
		UpdateColumn("earnings", gorm.Expr("earnings + ?", delta)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording earning: " + err.Error()})
		return
	}

	if err := db.DB.Where("code = ?", code).First(&referral).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving referral: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, referral)
}
