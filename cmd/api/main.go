package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"claimguard/adapters/heuristic"
	"claimguard/adapters/trustnet"
	"claimguard/internal/api"
	"claimguard/internal/config"
)

// The analysis service: the same pipeline the UI can embed, exposed over
// HTTP for clients that want the backend on its own.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	gin.SetMode(cfg.Server.GinMode)

	fetcher := trustnet.NewFetcher(cfg.Trust.FetchTimeout, cfg.Trust.CacheTTL)
	analyzer := heuristic.NewAnalyzer(trustnet.NewEngine(fetcher))

	router := api.NewRouter(analyzer)

	log.Printf("Starting ClaimGuard analysis service on :%s", cfg.Server.Port)
	log.Fatal(router.Run(":" + cfg.Server.Port))
}
