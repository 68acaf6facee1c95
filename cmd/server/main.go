package main

import (
	"log"

	_ "go.uber.org/automaxprocs"

	"lucky_casino/internal/app"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
