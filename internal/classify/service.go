package classify

import (
	"context"
	"log"
	"time"

	"flyerhub/internal/model"
	"flyerhub/internal/observability"
)

// Service answers classification for a batch of raw names, hitting the
// external classifier only for names the store has never seen.
type Service struct {
	Store     Store
	Client    Client
	BatchSize int           // names per external call
	Delay     time.Duration // cooldown between calls
}

// ClassifyAll returns one entry per distinct input name. A failed external
// batch leaves its names Uncategorized and the run continues; Uncategorized
// results are not persisted, so a later run retries them.
func (s *Service) ClassifyAll(ctx context.Context, names []string) (map[string]model.ClassificationEntry, error) {
	result := make(map[string]model.ClassificationEntry, len(names))

	var unknown []string
	seen := map[string]bool{}
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true

		e, ok, err := s.Store.Get(n)
		if err != nil {
			log.Printf("cache lookup failed for %q: %v", n, err)
		}
		if ok {
			observability.CacheHits.Inc()
			result[n] = e
			continue
		}
		observability.CacheMisses.Inc()
		unknown = append(unknown, n)
	}

	log.Printf("Classifying: %d unique names, %d cached, %d new", len(seen), len(seen)-len(unknown), len(unknown))

	batchSize := s.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	for i := 0; i < len(unknown); i += batchSize {
		end := i + batchSize
		if end > len(unknown) {
			end = len(unknown)
		}
		batch := unknown[i:end]

		if err := ctx.Err(); err != nil {
			markUncategorized(result, unknown[i:])
			return result, err
		}

		entries, err := s.Client.Classify(ctx, batch)
		if err != nil {
			log.Printf("Batch %d failed: %v", i/batchSize+1, err)
			observability.ClassifyBatchFailures.Inc()
			markUncategorized(result, batch)
			if end < len(unknown) {
				time.Sleep(s.Delay * 3) // back off harder after a failure
			}
			continue
		}

		byName := make(map[string]model.ClassificationEntry, len(entries))
		for _, e := range entries {
			byName[e.OriginalName] = e
		}

		for _, n := range batch {
			e, ok := byName[n]
			if !ok {
				// classifier dropped the name; leave it retryable
				result[n] = Uncategorized(n)
				continue
			}
			result[n] = e
			if err := s.Store.Put(n, e); err != nil {
				log.Printf("cache write failed for %q: %v", n, err)
			}
		}

		if end < len(unknown) {
			time.Sleep(s.Delay)
		}
	}

	return result, nil
}

// Uncategorized is the entry used when classification was not possible.
func Uncategorized(name string) model.ClassificationEntry {
	return model.ClassificationEntry{
		OriginalName: name,
		CleanName:    name,
		Category:     model.Uncategorized,
	}
}

func markUncategorized(result map[string]model.ClassificationEntry, names []string) {
	for _, n := range names {
		result[n] = Uncategorized(n)
	}
}
