package store

import (
	"errors"
	"net/http"

	"github.com/i7even3/fansnap/db"
	"github.com/i7even3/fansnap/models"
	"github.com/i7even3/fansnap/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary List a creator's store items
// @Description Retrieve all store items of a creator
// @Tags store
// @Produce json
// @Param creatorId path string true "Creator ID"
// @Success 200 {array} models.StoreItem
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /store/{creatorId}/items [get]
func GetCreatorItems(c *gin.Context) {
	creatorID := c.Param("creatorId")

	var items []models.StoreItem
	result := db.DB.Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&items)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving items: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Create a store item
// @Description Add an item to the authenticated creator's store
// @Tags store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.StoreItemCreate true "Item information"
// @Success 201 {object} models.StoreItem
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /store/items [post]
func CreateItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.StoreItemCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if *input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be zero or positive"})
		return
	}

	item := models.StoreItem{
		CreatorID:   userID.(string),
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
	}

	if err := db.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating item: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Store item created")

	c.JSON(http.StatusCreated, item)
}

// @Summary Place an order
// @Description Place an order on a store item for the authenticated user. Creators cannot buy their own items.
// @Tags store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.OrderCreate true "Order information"
// @Success 201 {object} models.Order
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Item not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /store/orders [post]
func PlaceOrder(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.OrderCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var item models.StoreItem
	if err := db.DB.First(&item, "id = ?", input.ItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving item: " + err.Error()})
		}
		return
	}

	if item.CreatorID == userID.(string) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot buy your own item"})
		return
	}

	// Payment capture happens elsewhere; orders stay PENDING here
	order := models.Order{
		ItemID:  item.ID,
		BuyerID: userID.(string),
		Status:  models.OrderPending,
	}

	if err := db.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating order: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Order placed")

	c.JSON(http.StatusCreated, order)
}

// @Summary List the authenticated user's orders
// @Description Retrieve all orders placed by the authenticated user
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Order
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /store/orders [get]
func GetBuyerOrders(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var orders []models.Order
	result := db.DB.Where("buyer_id = ?", userID).
		Order("created_at DESC").
		Find(&orders)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving orders: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}
