package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/abhisek/sprinklerprep/cmd"
)

func main() {
	// Optional .env for API keys and local overrides.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
