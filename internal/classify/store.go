package classify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"flyerhub/internal/model"
)

// Store is the persistent name -> classification mapping. Entries are never
// invalidated automatically; only a fresh classification overwrites one.
type Store interface {
	Get(name string) (model.ClassificationEntry, bool, error)
	Put(name string, e model.ClassificationEntry) error
}

type RedisStore struct {
	Client *redis.Client
	Prefix string
}

func (s *RedisStore) key(name string) string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = "classify:"
	}
	return prefix + name
}

func (s *RedisStore) Get(name string) (model.ClassificationEntry, bool, error) {
	ctx := context.Background()

	val, err := s.Client.Get(ctx, s.key(name)).Result()
	if err == redis.Nil {
		return model.ClassificationEntry{}, false, nil
	}
	if err != nil {
		return model.ClassificationEntry{}, false, err
	}

	var e model.ClassificationEntry
	if err := json.Unmarshal([]byte(val), &e); err != nil {
		return model.ClassificationEntry{}, false, err
	}

	return e, true, nil
}

func (s *RedisStore) Put(name string, e model.ClassificationEntry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	// sem TTL: o cache só é sobrescrito por uma nova classificação
	return s.Client.Set(context.Background(), s.key(name), b, 0).Err()
}

// SeedFromHistory backfills the store from already-classified history rows,
// so past runs keep paying for themselves. Existing entries win.
func SeedFromHistory(s Store, rows []model.PricePoint) int {
	seeded := 0
	for _, p := range rows {
		if p.OriginalName == "" || p.Category == "" || p.Category == model.Uncategorized {
			continue
		}
		if _, ok, err := s.Get(p.OriginalName); err != nil || ok {
			continue
		}
		e := model.ClassificationEntry{
			OriginalName: p.OriginalName,
			CleanName:    p.Item,
			Category:     p.Category,
			IsDeal:       p.IsDeal,
		}
		if err := s.Put(p.OriginalName, e); err == nil {
			seeded++
		}
	}
	return seeded
}
