package routes

import (
	"time"

	"github.com/i7even3/fansnap/handlers/ping"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter() *gin.Engine {

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ping", ping.New().HandlePing)

	AuthRoutes(r)
	UsersRoutes(r)
	PostsRoutes(r)
	SubscriptionsRoutes(r)
	StoreRoutes(r)
	ReferralsRoutes(r)
	PrivateMessagesRoutes(r)
	TipsRoutes(r)
	SearchRoutes(r)

	return r
}
