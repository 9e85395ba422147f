package main

import (
	"context"
	"flag"
	"log"

	"flyerhub/internal/config"
	"flyerhub/internal/db"
	"flyerhub/internal/history"
	"flyerhub/internal/repository"
)

// go run cmd/migrate/main.go -file=seton_grocery_history.csv
func main() {
	file := flag.String("file", "", "History CSV to upload (default from env)")
	flag.Parse()

	cfg := config.Load()
	if *file == "" {
		*file = cfg.HistoryFile
	}

	log.Println("--- MIGRATION START ---")

	store := &history.Store{Path: *file}
	rows, err := store.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar %s: %v", *file, err)
	}
	if len(rows) == 0 {
		log.Fatal("Nothing to migrate.")
	}
	log.Printf("Loaded %d rows.", len(rows))

	pool, err := db.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco de dados: %v", err)
	}
	defer pool.Close()

	repo := &repository.HistoryRepository{DB: pool}
	n, err := repo.CopyRows(context.Background(), rows)
	if err != nil {
		log.Fatalf("Upload failed: %v", err)
	}

	log.Printf("Success! %d rows uploaded to scanned_prices.", n)
}
