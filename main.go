package main

import (
	"os"

	"github.com/joho/godotenv"

	"shelftrack/app"
)

func main() {
	// .env is optional; production-style setups use real environment variables
	_ = godotenv.Load()

	os.Exit(app.CLI(os.Args[1:]))
}
