package main

import (
	"log"

	"github.com/joho/godotenv"

	"claimguard/internal/config"
	"claimguard/internal/container"
	"claimguard/ui"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatal("Failed to build container:", err)
	}

	app, err := ui.NewApp(c.Analyzer)
	if err != nil {
		log.Fatal("Failed to create UI app:", err)
	}

	log.Printf("Starting ClaimGuard UI on http://localhost:%s", cfg.Server.Port)
	log.Fatal(app.Start(ui.Config{Port: cfg.Server.Port}))
}
