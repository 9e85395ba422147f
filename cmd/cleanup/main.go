package main

import (
	"flag"
	"log"

	"flyerhub/internal/config"
	"flyerhub/internal/history"
)

// One-shot maintenance: re-deduplicates an existing history file.
//
// go run cmd/cleanup/main.go -out=clean_grocery_data.csv
func main() {
	in := flag.String("in", "", "History file to clean (default from env)")
	out := flag.String("out", "clean_grocery_data.csv", "Cleaned output file")
	flag.Parse()

	cfg := config.Load()
	if *in == "" {
		*in = cfg.HistoryFile
	}

	store := &history.Store{Path: *in}
	rows, err := store.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar %s: %v", *in, err)
	}
	log.Printf("Original count: %d", len(rows))

	deduped := history.Merge(nil, rows)
	log.Printf("Cleaned count: %d (removed %d duplicates)", len(deduped), len(rows)-len(deduped))

	clean := &history.Store{Path: *out}
	if err := clean.Save(deduped); err != nil {
		log.Fatalf("Erro ao salvar %s: %v", *out, err)
	}
	log.Printf("Saved %s", *out)
}
