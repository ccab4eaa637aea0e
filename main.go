// Dev launcher: applies migrations, then serves the API and UI from one
// process. Production deployments run cmd/api and cmd/ui separately.
package main

import (
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sycobench/adapters/api"
	"sycobench/adapters/llm"
	"sycobench/adapters/postgres"
	"sycobench/app"
	"sycobench/internal/config"
	"sycobench/ports"
	"sycobench/ui"

	"github.com/jmoiron/sqlx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	gin.SetMode(cfg.Server.GinMode)

	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := applyMigrations(db, "adapters/postgres/migrations"); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	var embedder ports.Embedder
	if cfg.Providers.OpenAIKey != "" {
		embedder = llm.NewOpenAIEmbedder(cfg.Providers.OpenAIKey, cfg.Embedding.Model)
	}

	server := api.NewServer(
		postgres.NewExperimentRepository(db),
		postgres.NewReportRepository(db),
		app.NewAnalysisService(embedder, cfg.Experiment.PairedH2),
		cfg.Models(),
	)
	go func() {
		log.Printf("Starting sycobench API server on :%s", cfg.Server.APIPort)
		if err := server.Router().Run(":" + cfg.Server.APIPort); err != nil {
			log.Fatalf("API server failed: %v", err)
		}
	}()

	uiApp := ui.NewApp(ui.Config{Port: cfg.Server.UIPort}, postgres.NewReportRepository(db))
	log.Fatal(uiApp.Start())
}

func applyMigrations(db *sqlx.DB, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if _, err := db.Exec(string(sql)); err != nil {
			return err
		}
		log.Printf("Applied migration %s", file)
	}
	return nil
}
