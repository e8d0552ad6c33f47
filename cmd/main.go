package main

import (
	"log"
	"os"

	"geramenu/config"
	"geramenu/routes"
	"geramenu/services"
	"geramenu/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	services.InitStripe()

	r := routes.SetupRouter()
	r.Run(":8080")
}
