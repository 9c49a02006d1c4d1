package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/xstrengthofonex/edustudio/app/config"
	"github.com/xstrengthofonex/edustudio/app/fixtures"
	"github.com/xstrengthofonex/edustudio/app/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := config.Load()
	store := fixtures.NewStore(fixtures.Seed())

	app := server.New(cfg, store)

	log.Printf("Listening on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
