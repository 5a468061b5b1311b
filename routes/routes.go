package routes

import (
	"github.com/Abhibhav1976/MacroTracker/controllers"
	"github.com/Abhibhav1976/MacroTracker/middlewares"
	"github.com/Abhibhav1976/MacroTracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services, controllers, and routes onto one engine.
func SetupRouter(db *gorm.DB, recognizer services.Recognizer) *gin.Engine {
	users := services.NewUserService(db)
	macros := services.NewMacroService(db, users)
	foods := services.NewFoodService(db)
	images := services.NewImageService(db, recognizer)

	auth := controllers.NewAuthController(users)
	user := controllers.NewUserController(users)
	macro := controllers.NewMacroController(macros)
	food := controllers.NewFoodController(foods)
	image := controllers.NewImageController(images)

	r := gin.Default()

	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(db))
	{
		protected.GET("/user/profile", user.GetProfile)
		protected.PUT("/user/profile", user.UpdateProfile)

		protected.POST("/macros", macro.LogMacro)
		protected.PUT("/macros", macro.EditMacro)
		protected.GET("/macros", macro.FindMacros)

		protected.POST("/food/scan", food.ScanFood)

		protected.POST("/images/query", image.Query)
		protected.GET("/images", image.ListImages)
		protected.DELETE("/images/:id", image.DeleteImage)
	}

	return r
}
