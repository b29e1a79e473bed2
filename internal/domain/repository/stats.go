package repository

import (
	"context"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

// StatsRepository reads platform-wide counters from a single snapshot.
type StatsRepository interface {
	PlatformCounts(ctx context.Context) (*model.PlatformStats, error)
}
