// Command migrate applies the SQL migrations in order against DATABASE_URL.
package main

import (
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"

	"sycobench/adapters/postgres"
	"sycobench/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Migrate] config: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("[Migrate] DATABASE_URL is required")
	}

	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatalf("[Migrate] database: %v", err)
	}
	defer db.Close()

	dir := "adapters/postgres/migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		log.Fatalf("[Migrate] scan %s: %v", dir, err)
	}
	if len(files) == 0 {
		log.Fatalf("[Migrate] no migrations found in %s", dir)
	}
	sort.Strings(files)

	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("[Migrate] read %s: %v", file, err)
		}
		if _, err := db.Exec(string(sql)); err != nil {
			log.Fatalf("[Migrate] apply %s: %v", file, err)
		}
		log.Printf("[Migrate] applied %s", file)
	}
	log.Printf("[Migrate] done, %d migration(s) applied", len(files))
}
