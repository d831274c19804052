package routes

import (
	"github.com/i7even3/fansnap/handlers/subscriptions"
	"github.com/i7even3/fansnap/middleware"

	"github.com/gin-gonic/gin"
)

func SubscriptionsRoutes(r *gin.Engine) {
	subscriptionsRoutes := r.Group("/subscriptions")
	subscriptionsRoutes.Use(middleware.JWTAuth())
	{
		subscriptionsRoutes.POST("", subscriptions.Subscribe)
		subscriptionsRoutes.GET("", subscriptions.GetUserSubscriptions)
		subscriptionsRoutes.GET("/status/:creatorId", subscriptions.GetSubscriptionStatus)
	}
}
