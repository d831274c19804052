package routes

import (
	"github.com/i7even3/fansnap/handlers/referrals"
	"github.com/i7even3/fansnap/middleware"

	"github.com/gin-gonic/gin"
)

func ReferralsRoutes(r *gin.Engine) {
	// Public routes: signup and earning events come from the payment and
	// onboarding flows, which authenticate upstream
	r.GET("/referrals/:code", referrals.GetByCode)
	r.POST("/referrals/:code/signup", referrals.RecordSignup)
	r.POST("/referrals/:code/earnings", referrals.RecordEarning)

	referralsRoutes := r.Group("/referrals")
	referralsRoutes.Use(middleware.JWTAuth())
	{
		referralsRoutes.POST("", referrals.CreateCode)
	}
}
