package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flyerhub/internal/model"
)

// HistoryRepository bulk-uploads the CSV history into scanned_prices.
type HistoryRepository struct {
	DB *pgxpool.Pool
}

func (r *HistoryRepository) CopyRows(ctx context.Context, rows []model.PricePoint) (int64, error) {
	now := time.Now()

	src := make([][]any, 0, len(rows))
	for _, p := range rows {
		recordedAt := now
		if t, err := time.Parse("2006-01-02", p.Date); err == nil {
			recordedAt = t
		}
		src = append(src, []any{p.Item, p.PriceValue, recordedAt})
	}

	return r.DB.CopyFrom(
		ctx,
		pgx.Identifier{"scanned_prices"},
		[]string{"product_name", "price", "recorded_at"},
		pgx.CopyFromRows(src),
	)
}
