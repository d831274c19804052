package routes

import (
	"github.com/i7even3/fansnap/handlers/store"
	"github.com/i7even3/fansnap/middleware"

	"github.com/gin-gonic/gin"
)

func StoreRoutes(r *gin.Engine) {
	// Public routes
	r.GET("/store/:creatorId/items", store.GetCreatorItems)

	storeRoutes := r.Group("/store")
	storeRoutes.Use(middleware.JWTAuth())
	{
		storeRoutes.POST("/items", store.CreateItem)
		storeRoutes.POST("/orders", store.PlaceOrder)
		storeRoutes.GET("/orders", store.GetBuyerOrders)
	}
}
