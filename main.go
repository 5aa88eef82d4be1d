package main

import (
	"github.com/sorafields/lavenderlog/config"
	"github.com/sorafields/lavenderlog/models"
	"github.com/sorafields/lavenderlog/routes"
	"github.com/sorafields/lavenderlog/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Habit{},
		&models.HabitEntry{},
		&models.Reflection{},
		&models.Reward{},
		&models.Media{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
