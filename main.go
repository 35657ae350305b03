package main

import (
	"farm2art/database"
	"farm2art/helper"
	"farm2art/router"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartOrderExpiryScheduler()
	defer helper.StopOrderExpiryScheduler()
	helper.StartProductStatusScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
