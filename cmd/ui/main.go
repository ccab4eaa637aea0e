// Command ui serves the rendered analysis report from postgres.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"sycobench/adapters/postgres"
	"sycobench/internal/config"
	"sycobench/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[UI] config: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("[UI] DATABASE_URL is required for the UI server")
	}

	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatalf("[UI] database: %v", err)
	}
	defer db.Close()

	app := ui.NewApp(ui.Config{Port: cfg.Server.UIPort}, postgres.NewReportRepository(db))
	if err := app.Start(); err != nil {
		log.Fatalf("[UI] server: %v", err)
	}
}
