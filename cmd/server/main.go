package main

import (
	"os"

	"safik-ai/site/internal/app"
)

// @title           Safik AI Site API
// @version         1.0
// @description     Chat widget sessions for the Safik AI marketing site.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
