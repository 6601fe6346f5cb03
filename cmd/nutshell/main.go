package main

import "github.com/joho/godotenv"

func main() {
	// Optional .env for API keys and paths; absence is fine
	_ = godotenv.Load()
	Execute()
}
