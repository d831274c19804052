package routes

import (
	"github.com/i7even3/fansnap/handlers/tips"
	"github.com/i7even3/fansnap/middleware"

	"github.com/gin-gonic/gin"
)

func TipsRoutes(r *gin.Engine) {
	tipsRoutes := r.Group("/tips")
	tipsRoutes.Use(middleware.JWTAuth())
	{
		tipsRoutes.POST("", tips.SendTip)
		tipsRoutes.GET("/received", tips.GetReceivedTips)
	}
}
