package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"flyerhub/internal/classify"
	"flyerhub/internal/config"
	"flyerhub/internal/flipp"
	"flyerhub/internal/history"
	"flyerhub/internal/model"
	"flyerhub/internal/observability"
	"flyerhub/internal/price"
)

const defaultStores = "Real Canadian Superstore,Save-On-Foods,Calgary Co-op,Sobeys,Safeway"

// go run cmd/scan/main.go -postal=T3M1M9 -stores="Sobeys,Safeway"
func main() {
	postal := flag.String("postal", "", "Postal code (default from env)")
	storesArg := flag.String("stores", defaultStores, "Stores to scan, comma separated")
	file := flag.String("file", "", "History file (default from env)")
	dry := flag.Bool("dry", false, "Scan and classify without saving")
	flag.Parse()

	cfg := config.Load()
	observability.Start(cfg.MetricsPort)

	if *postal == "" {
		*postal = cfg.PostalCode
	}
	if *file == "" {
		*file = cfg.HistoryFile
	}
	stores := strings.Split(*storesArg, ",")
	for i := range stores {
		stores[i] = strings.TrimSpace(stores[i])
	}

	log.Printf("Scanning flyers for %s...", *postal)
	flyers, err := flipp.Flyers(*postal)
	if err != nil {
		log.Fatalf("Erro ao buscar flyers: %v", err)
	}
	selected := flipp.SelectWeekly(flyers, stores)
	if len(selected) == 0 {
		log.Fatal("No flyers found.")
	}
	for _, f := range selected {
		log.Printf("Selected: %s (ID: %d)", f.Merchant, f.ID)
	}

	today := time.Now().Format("2006-01-02")
	var batch []model.PricePoint

	for _, f := range selected {
		items, err := flipp.Items(f.ID)
		if err != nil {
			log.Printf("Erro no flyer %d (%s): %v", f.ID, f.Merchant, err)
			continue
		}
		log.Printf("Processing %s (%d items)...", f.Merchant, len(items))

		for _, it := range items {
			name := strings.TrimSpace(it.Name)
			if name == "" {
				name = firstLine(flipp.DescriptionText(it.Description))
			}
			if name == "" {
				continue
			}

			text, value, err := price.FromField(it.RawPrice())
			if err != nil {
				// sem preço utilizável: mantém a linha, fora da análise
				text, value = "Check Store", 0
			}

			validTo := it.ValidTo
			if validTo == "" {
				validTo = f.ValidTo
			}

			batch = append(batch, model.PricePoint{
				Date:         today,
				Store:        f.Merchant,
				Item:         name,
				OriginalName: name,
				PriceText:    text,
				PriceValue:   value,
				ValidUntil:   validTo,
			})
			observability.ItemsScraped.Inc()
		}
	}

	if len(batch) == 0 {
		log.Fatal("No items found.")
	}

	store := &history.Store{Path: *file}
	hist, err := store.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar histórico: %v", err)
	}

	// cache: redis quando configurado, senão arquivo local
	var cache classify.Store
	var fileCache *classify.FileStore
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("REDIS_URL inválida: %v", err)
		}
		cache = &classify.RedisStore{Client: redis.NewClient(opt)}
	} else {
		fileCache, err = classify.NewFileStore(cfg.CacheFile)
		if err != nil {
			log.Fatalf("Erro ao carregar cache: %v", err)
		}
		cache = fileCache
	}

	if n := classify.SeedFromHistory(cache, hist); n > 0 {
		log.Printf("Seeded %d known items from history", n)
	}

	svc := &classify.Service{
		Store:     cache,
		Client:    classify.NewOpenAIClient(cfg.OpenAIKey),
		BatchSize: cfg.ClassifyBatch,
		Delay:     cfg.ClassifyDelay,
	}

	names := make([]string, 0, len(batch))
	for _, p := range batch {
		names = append(names, p.OriginalName)
	}
	entries, err := svc.ClassifyAll(context.Background(), names)
	if err != nil {
		log.Printf("Classificação interrompida: %v", err)
	}

	for i := range batch {
		e, ok := entries[batch[i].OriginalName]
		if !ok {
			e = classify.Uncategorized(batch[i].OriginalName)
		}
		batch[i].Category = e.Category
		batch[i].IsDeal = e.IsDeal
		if e.CleanName != "" {
			batch[i].Item = e.CleanName
		}
		if e.Category != model.Uncategorized {
			batch[i].ClassifiedAt = today
		}
	}

	merged := history.Merge(hist, history.Clean(batch))
	observability.HistoryRows.Set(float64(len(merged)))

	if *dry {
		log.Printf("Dry run: %d rows would be saved (%d before merge)", len(merged), len(hist))
		return
	}

	if err := store.Save(merged); err != nil {
		log.Fatalf("Erro ao salvar histórico: %v", err)
	}
	if fileCache != nil {
		if err := fileCache.Save(); err != nil {
			log.Printf("Erro ao salvar cache: %v", err)
		}
	}

	log.Printf("Success! History now has %d rows.", len(merged))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
