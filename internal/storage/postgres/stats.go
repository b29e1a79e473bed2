package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

type statsRepository struct {
	storage *Storage
}

var snapshotTx = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// PlatformCounts reads all counters from one snapshot.
func (r *statsRepository) PlatformCounts(ctx context.Context) (*model.PlatformStats, error) {
	var stats model.PlatformStats
	err := r.storage.withinTx(ctx, snapshotTx, func(tx pgx.Tx) error {
		counters := []struct {
			query string
			dest  *int64
		}{
			{`SELECT COUNT(*) FROM users`, &stats.TotalUsers},
			{`SELECT COUNT(*) FROM stores`, &stats.TotalStores},
			{`SELECT COUNT(*) FROM ratings`, &stats.TotalRatings},
			{`SELECT COUNT(DISTINCT user_id) FROM ratings`, &stats.ActiveUsers},
		}
		for _, c := range counters {
			if err := tx.QueryRow(ctx, c.query).Scan(c.dest); err != nil {
				return translate(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
