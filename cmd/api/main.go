// Command api serves the analysis pipeline as a JSON API backed by postgres.
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sycobench/adapters/api"
	"sycobench/adapters/llm"
	"sycobench/adapters/postgres"
	"sycobench/app"
	"sycobench/internal/config"
	"sycobench/ports"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[API] config: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("[API] DATABASE_URL is required for the API server")
	}
	gin.SetMode(cfg.Server.GinMode)

	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatalf("[API] database: %v", err)
	}
	defer db.Close()

	var embedder ports.Embedder
	if cfg.Providers.OpenAIKey != "" {
		embedder = llm.NewOpenAIEmbedder(cfg.Providers.OpenAIKey, cfg.Embedding.Model)
	} else {
		log.Printf("[API] no OPENAI_API_KEY, analysis will use stored embeddings only")
	}

	server := api.NewServer(
		postgres.NewExperimentRepository(db),
		postgres.NewReportRepository(db),
		app.NewAnalysisService(embedder, cfg.Experiment.PairedH2),
		cfg.Models(),
	)

	addr := ":" + cfg.Server.APIPort
	log.Printf("[API] listening on %s", addr)
	if err := server.Router().Run(addr); err != nil {
		log.Fatalf("[API] server: %v", err)
	}
}
