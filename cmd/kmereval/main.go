// cmd/kmereval/main.go
package main

import (
	"github.com/joho/godotenv"

	"kmereval/internal/app"
	"kmereval/internal/appshell"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	appshell.Main(app.RunContext)
}
