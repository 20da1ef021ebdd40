package main

import (
	"log"

	"github.com/itg-platform/docverse/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("docverse failed to start: %v", err)
	}
}
