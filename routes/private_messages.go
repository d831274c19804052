package routes

import (
	"github.com/i7even3/fansnap/handlers/privateMessages"
	"github.com/i7even3/fansnap/middleware"

	"github.com/gin-gonic/gin"
)

func PrivateMessagesRoutes(r *gin.Engine) {
	messagesRoutes := r.Group("/private-messages")
	messagesRoutes.Use(middleware.JWTAuth())
	{
		messagesRoutes.POST("", privateMessages.SendMessage)
		messagesRoutes.GET("/conversations", privateMessages.GetConversations)
		messagesRoutes.GET("/thread/:userId", privateMessages.GetThread)
	}
}
