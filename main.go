package main

import (
	"eduvest/config"
	"eduvest/database"
	authRoutes "eduvest/routers/authRoutes"
	courseRoutes "eduvest/routers/courseRoutes"
	investmentRoutes "eduvest/routers/investmentRoutes"
	rewardRoutes "eduvest/routers/rewardRoutes"
	userRoutes "eduvest/routers/userRoutes"
	"eduvest/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	rewardRoutes.SetupRewardRoutes(app)
	investmentRoutes.SetupInvestmentRoutes(app)

	utils.InitializeDeadlineScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
