package repository

import (
	"context"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

// StoreRepository describes persistence operations for stores.
// Create must reject a second store for the same owner with ErrDuplicateStore.
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	GetByOwner(ctx context.Context, ownerID int64) (*model.Store, error)
	List(ctx context.Context, filter model.StoreFilter) ([]model.Store, error)
}
