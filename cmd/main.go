package main

import (
	"log"
	"os"

	"github.com/Abhibhav1976/MacroTracker/config"
	"github.com/Abhibhav1976/MacroTracker/routes"
	"github.com/Abhibhav1976/MacroTracker/services"
	"github.com/Abhibhav1976/MacroTracker/utils"
)

func main() {
	db := config.InitDB()

	utils.InitS3()
	utils.InitSES()

	recognizer, err := services.NewOpenAIService()
	if err != nil {
		log.Fatalf("Failed to initialize the recognition model: %v", err)
	}

	reminders := services.NewReminderService(db)
	if err := reminders.Start(); err != nil {
		log.Fatalf("Failed to start reminder scheduler: %v", err)
	}
	defer reminders.Stop()

	r := routes.SetupRouter(db, recognizer)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
