package main

import (
	"wedding-api/app"
)

// @title           Wedding Venue API
// @version         1.0
// @description     Public content and admin dashboard API of a wedding venue.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
