package main

import (
	"github.com/joho/godotenv"

	"inkwheel/internal/cli"
)

func main() {
	// Load .env file if it exists
	// We ignore the error because deployments may rely on system env vars
	_ = godotenv.Load()

	cli.Execute()
}
