package main

import (
	"log"

	"github.com/i7even3/fansnap/config"
	"github.com/i7even3/fansnap/db"
	_ "github.com/i7even3/fansnap/docs"
	"github.com/i7even3/fansnap/routes"
	"github.com/i7even3/fansnap/utils"

	"github.com/gin-gonic/gin"
)

// @title FanSnap API
// @version 1.0
// @description Backend API for the FanSnap creator platform
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Image uploads will not work.")
	}

	r := routes.SetupRouter()

	if err := r.Run(":" + config.Port()); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
