package main

import (
	"log"

	"github.com/MrSnakeDoc/scoreline/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ scoreline failed to start: %v", err)
	}
}
