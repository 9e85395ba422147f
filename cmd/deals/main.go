package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"flyerhub/internal/config"
	"flyerhub/internal/db"
	"flyerhub/internal/deals"
	"flyerhub/internal/history"
	"flyerhub/internal/model"
	"flyerhub/internal/repository"
)

// go run cmd/deals/main.go
// go run cmd/deals/main.go -all -upload
func main() {
	file := flag.String("file", "", "History file (default from env)")
	all := flag.Bool("all", false, "Print every evaluated item, not just deals")
	upload := flag.Bool("upload", false, "Save surfaced deals to price_reports")
	diagnose := flag.Bool("diagnose", false, "Round-trip a dummy row through price_reports and exit")
	flag.Parse()

	cfg := config.Load()
	if *file == "" {
		*file = cfg.HistoryFile
	}

	if *diagnose {
		dbConn, err := db.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Erro ao conectar no banco de dados: %v", err)
		}
		repo := &repository.ReportRepository{DB: dbConn}
		if err := repo.Diagnose(); err != nil {
			log.Fatalf("Diagnostic failed: %v", err)
		}
		log.Println("Diagnostic complete: write and read OK.")
		return
	}

	store := &history.Store{Path: *file}
	hist, err := store.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar histórico: %v", err)
	}
	if len(hist) == 0 {
		log.Fatal("No history found. Run cmd/scan first.")
	}

	current := currentBatch(hist)
	log.Printf("Evaluating %d current flyer rows (%d total in history)", len(current), len(hist))

	results := deals.NewDefaultEvaluator().Evaluate(current, hist)

	shown := 0
	for _, r := range results {
		if !r.IsDeal && !*all {
			continue
		}
		shown++
		source := "national"
		if r.LocalBenchmark {
			source = "local"
		}
		fmt.Printf("%-26s %-32s %-14s vs $%.2f/%s (%s avg)  save %.1f%%\n",
			r.Row.Store, r.Row.Item, r.DisplayPrice,
			r.DisplayBenchmark, r.Rule.Unit, source, r.Savings*100)
	}
	log.Printf("%d of %d evaluated rows surfaced", shown, len(results))

	if *upload {
		dbConn, err := db.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Erro ao conectar no banco de dados: %v", err)
		}
		repo := &repository.ReportRepository{DB: dbConn}
		saved := 0
		for _, r := range results {
			if !r.IsDeal {
				continue
			}
			if err := repo.Save(r.Row); err != nil {
				log.Printf("Erro ao salvar %s: %v", r.Row.Item, err)
				continue
			}
			saved++
		}
		log.Printf("Uploaded %d deals to price_reports", saved)
	}
}

// currentBatch isolates each store's latest flyer; rows without a
// valid-until get the scrape date plus seven days.
func currentBatch(hist []model.PricePoint) []model.PricePoint {
	latest := map[string]string{}
	for _, p := range hist {
		if p.Date > latest[p.Store] {
			latest[p.Store] = p.Date
		}
	}

	var out []model.PricePoint
	for _, p := range hist {
		if p.Date != latest[p.Store] {
			continue
		}
		if p.ValidUntil == "" {
			if t, err := time.Parse("2006-01-02", p.Date); err == nil {
				p.ValidUntil = t.AddDate(0, 0, 7).Format("2006-01-02")
			}
		}
		out = append(out, p)
	}
	return out
}
